package snmp

import "context"

//go:generate mockgen -destination=mock_snmp.go -package=snmp github.com/netminder/netminder/pkg/snmp Requester

// Requester is the protocol-level surface of a Client, one method per SNMP
// exchange kind plus the subtree walk built on top of them.
type Requester interface {
	Get(ctx context.Context, oid []uint32) ([]byte, error)
	GetNext(ctx context.Context, oid []uint32) ([]uint32, []byte, error)
	GetBulk(ctx context.Context, oid []uint32, maxReps int) ([]VarBind, error)
	Walk(ctx context.Context, base []uint32) ([]VarBind, error)
}

// getNexter is the single step a subtree walk needs.
type getNexter interface {
	GetNext(ctx context.Context, oid []uint32) ([]uint32, []byte, error)
}

// getBulker is the single step a GETBULK walk needs.
type getBulker interface {
	GetBulk(ctx context.Context, oid []uint32, maxReps int) ([]VarBind, error)
}

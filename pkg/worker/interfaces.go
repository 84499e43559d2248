// Package worker pkg/worker/interfaces.go
package worker

import (
	"context"

	"github.com/netminder/netminder/pkg/snmp"
)

//go:generate mockgen -destination=mock_worker.go -package=worker github.com/netminder/netminder/pkg/worker Poller

// Poller is the device-facing surface a discovery routine needs. A
// *snmp.Client satisfies it; tests substitute a mock.
type Poller interface {
	SystemInfo(ctx context.Context) (*snmp.SystemInfo, error)
	Inventory(ctx context.Context) (*snmp.Inventory, error)
	Interfaces(ctx context.Context) ([]snmp.Interface, error)
	MacTable(ctx context.Context) ([]snmp.MacEntry, error)
	ArpTable(ctx context.Context) ([]snmp.ArpEntry, error)
	Neighbors(ctx context.Context) ([]snmp.Neighbor, error)
}

// PollerFactory builds a Poller for one device address.
type PollerFactory func(host string) Poller

// Prober reports basic reachability ahead of an SNMP session.
type Prober interface {
	Probe(ctx context.Context, ip string) bool
}

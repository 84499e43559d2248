// Package db pkg/db/interfaces.go
package db

import (
	"time"

	"github.com/netminder/netminder/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/netminder/netminder/pkg/db Service

// Service represents all database operations.
type Service interface {
	Close() error

	// Device operations.

	UpsertDevice(device *models.Device) error
	GetDevice(ip string) (*models.Device, error)
	ListDevices() ([]models.Device, error)
	DeleteDevice(ip string) error
	TouchLastOperation(ip string, action models.JobAction, when time.Time) error
	UpsertDevicePort(port *models.DevicePort) error
	ListDevicePorts(ip string) ([]models.DevicePort, error)

	// Node operations.

	UpsertNode(node *models.Node) error
	FindNodesByMAC(mac string) ([]models.Node, error)
	DeactivateStaleNodes(switchIP string, cutoff time.Time) (int64, error)
	UpsertNodeIP(mac, ip string) error
	FindNodeIPs(ip string) ([]models.NodeIP, error)
	DeactivateStaleNodeIPs(cutoff time.Time) (int64, error)

	// Job queue operations.

	EnqueueJob(job *models.Job) (int64, error)
	DequeueJob() (*models.Job, error)
	CompleteJob(id int64, status models.JobStatus, logText string) error
	GetJob(id int64) (*models.Job, error)
	ListJobs(limit int) ([]models.Job, error)
	HasPendingJob(action models.JobAction) (bool, error)
	RecoverAbandonedJobs(logText string) (int64, error)

	// User log operations.

	AddUserLog(username, userIP, event string) error

	// Expiry operations.

	ExpireDevices(age time.Duration) (int64, error)
	ExpireNodes(age time.Duration) (int64, error)
	ExpireNodeIPs(age time.Duration) (int64, error)
	ExpireJobs(age time.Duration) (int64, error)
	ExpireUserLogs(age time.Duration) (int64, error)
}

package config

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// ACL is an allow/deny list pair for one discovery operation. Entries
// may be exact IPs, CIDR blocks, or the wildcard tokens understood by
// pkg/permission. "only" follows the source vocabulary: an empty only
// list permits everything not in "no".
type ACL struct {
	Only []string `json:"only,omitempty"`
	No   []string `json:"no,omitempty"`
}

// SNMPConfig holds the client settings shared by all polling routines.
type SNMPConfig struct {
	Community      string   `json:"community"`        // e.g., "public"
	Version        int      `json:"version"`          // 1, 2 or 3
	Timeout        Duration `json:"timeout"`          // per-request receive timeout
	Retries        int      `json:"retries"`          // resends after the first attempt
	MaxRepetitions int      `json:"max_repetitions"`  // GETBULK batch size, negative disables GETBULK
	RequestsPerSec int      `json:"requests_per_sec"` // walk pacing, 0 = unlimited
}

const defaultWorkerTasks = 4

// WorkerConfig sizes the job-processing pool.
type WorkerConfig struct {
	// Tasks is either a plain number or "AUTO * N" meaning
	// runtime.NumCPU() * N.
	Tasks   string   `json:"tasks"`
	Timeout Duration `json:"timeout"` // execution deadline per job
	Sleep   Duration `json:"sleep"`   // pause between empty-queue polls
}

// Count resolves the Tasks token to a concrete worker count. Anything
// unparseable falls back to a small fixed pool.
func (w WorkerConfig) Count() int {
	token := strings.TrimSpace(w.Tasks)
	if token == "" {
		return defaultWorkerTasks
	}

	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return n
	}

	if strings.EqualFold(token, "AUTO") {
		return runtime.NumCPU()
	}

	parts := strings.SplitN(token, "*", 2)
	if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "AUTO") {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && n > 0 {
			return runtime.NumCPU() * n
		}
	}

	return defaultWorkerTasks
}

// ExpireConfig holds per-category retention ages for the expire job.
type ExpireConfig struct {
	Devices    Duration `json:"devices"`
	Nodes      Duration `json:"nodes"`
	ArpEntries Duration `json:"arp_entries"`
	Jobs       Duration `json:"jobs"`
	UserLogs   Duration `json:"user_logs"`
}

// Config is the daemon configuration.
type Config struct {
	ListenAddr string `json:"listen_addr"` // e.g., :8043
	DBPath     string `json:"db_path"`

	SNMP    SNMPConfig   `json:"snmp"`
	Workers WorkerConfig `json:"workers"`
	Expire  ExpireConfig `json:"expire"`

	// Per-operation access control.
	Discover ACL `json:"discover,omitempty"`
	Macsuck  ACL `json:"macsuck,omitempty"`
	Arpnip   ACL `json:"arpnip,omitempty"`
	Nbtstat  ACL `json:"nbtstat,omitempty"`
}

// Validate applies defaults and rejects configurations the daemon
// cannot start with.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errNoDBPath
	}

	if c.ListenAddr == "" {
		c.ListenAddr = ":8043"
	}

	if c.SNMP.Community == "" {
		c.SNMP.Community = "public"
	}

	if c.SNMP.Version == 0 {
		c.SNMP.Version = 2
	}

	if c.SNMP.Timeout == 0 {
		c.SNMP.Timeout = Duration(2 * time.Second)
	}

	if c.SNMP.MaxRepetitions == 0 {
		c.SNMP.MaxRepetitions = 20
	}

	if c.Workers.Timeout == 0 {
		c.Workers.Timeout = Duration(10 * time.Minute)
	}

	if c.Workers.Sleep == 0 {
		c.Workers.Sleep = Duration(5 * time.Second)
	}

	if c.Expire.Devices == 0 {
		c.Expire.Devices = Duration(60 * 24 * time.Hour)
	}

	if c.Expire.Nodes == 0 {
		c.Expire.Nodes = Duration(90 * 24 * time.Hour)
	}

	if c.Expire.ArpEntries == 0 {
		c.Expire.ArpEntries = Duration(90 * 24 * time.Hour)
	}

	if c.Expire.Jobs == 0 {
		c.Expire.Jobs = Duration(14 * 24 * time.Hour)
	}

	if c.Expire.UserLogs == 0 {
		c.Expire.UserLogs = Duration(365 * 24 * time.Hour)
	}

	return nil
}

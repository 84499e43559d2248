package models

import (
	"fmt"
	"time"
)

// JobStatus is the lifecycle state of a queued job.
type JobStatus string

const (
	StatusQueued  JobStatus = "queued"
	StatusRunning JobStatus = "running"
	StatusDone    JobStatus = "done"
	StatusError   JobStatus = "error"

	// StatusDeferred is reserved for retry backoff; nothing sets it yet.
	StatusDeferred JobStatus = "deferred"
)

// JobAction is the operation a queued job requests.
type JobAction string

const (
	ActionDiscover    JobAction = "discover"
	ActionDiscoverAll JobAction = "discoverall"
	ActionMacsuck     JobAction = "macsuck"
	ActionMacwalk     JobAction = "macwalk"
	ActionArpnip      JobAction = "arpnip"
	ActionArpwalk     JobAction = "arpwalk"
	ActionNbtstat     JobAction = "nbtstat"
	ActionNbtwalk     JobAction = "nbtwalk"
	ActionExpire      JobAction = "expire"
	ActionDelete      JobAction = "delete"
	ActionPortControl JobAction = "portcontrol"
	ActionPortName    JobAction = "portname"
	ActionPortVLAN    JobAction = "portvlan"
	ActionPower       JobAction = "power"
	ActionGraph       JobAction = "graph"
	ActionShow        JobAction = "show"
	ActionStats       JobAction = "stats"
	ActionLinter      JobAction = "linter"
)

var knownActions = map[JobAction]bool{
	ActionDiscover:    true,
	ActionDiscoverAll: true,
	ActionMacsuck:     true,
	ActionMacwalk:     true,
	ActionArpnip:      true,
	ActionArpwalk:     true,
	ActionNbtstat:     true,
	ActionNbtwalk:     true,
	ActionExpire:      true,
	ActionDelete:      true,
	ActionPortControl: true,
	ActionPortName:    true,
	ActionPortVLAN:    true,
	ActionPower:       true,
	ActionGraph:       true,
	ActionShow:        true,
	ActionStats:       true,
	ActionLinter:      true,
}

// ParseAction validates an action token at the queue-insertion boundary so
// workers never see an unknown action.
func ParseAction(s string) (JobAction, error) {
	action := JobAction(s)
	if !knownActions[action] {
		return "", fmt.Errorf("unknown action %q", s)
	}

	return action, nil
}

// RequiresDevice reports whether the action targets a single device and
// therefore cannot run without one.
func (a JobAction) RequiresDevice() bool {
	switch a {
	case ActionDiscover, ActionMacsuck, ActionArpnip, ActionNbtstat, ActionDelete,
		ActionPortControl, ActionPortName, ActionPortVLAN, ActionPower:
		return true
	default:
		return false
	}
}

// Job is one row of the admin queue.
//
// Status invariants: Started is set iff status is running, done or error;
// Finished is set iff status is done or error.
type Job struct {
	ID        int64      `json:"id"`
	Action    JobAction  `json:"action"`
	Device    string     `json:"device,omitempty"`
	Port      string     `json:"port,omitempty"`
	Subaction string     `json:"subaction,omitempty"`
	Status    JobStatus  `json:"status"`
	Username  string     `json:"username,omitempty"`
	UserIP    string     `json:"userip,omitempty"`
	Log       string     `json:"log,omitempty"`
	Debug     bool       `json:"debug,omitempty"`
	Entered   time.Time  `json:"entered"`
	Started   *time.Time `json:"started,omitempty"`
	Finished  *time.Time `json:"finished,omitempty"`
}

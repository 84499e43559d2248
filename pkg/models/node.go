package models

import (
	"strings"
	"time"
)

// Node is a MAC address seen on a switch port, keyed by
// (mac, switch, port, vlan). Stale entries are deactivated, not deleted;
// expiry removes them later.
type Node struct {
	MAC        string     `json:"mac"`
	Switch     string     `json:"switch"` // device IP
	Port       string     `json:"port"`
	VLAN       string     `json:"vlan,omitempty"`
	Active     bool       `json:"active"`
	OUI        string     `json:"oui,omitempty"`
	TimeFirst  *time.Time `json:"time_first,omitempty"`
	TimeRecent *time.Time `json:"time_recent,omitempty"`
	TimeLast   *time.Time `json:"time_last,omitempty"`
}

// NodeIP is a MAC-to-IP binding learned from an ARP/NDP table, keyed by
// (mac, ip). Same active/staleness lifecycle as Node.
type NodeIP struct {
	MAC       string     `json:"mac"`
	IP        string     `json:"ip"`
	Active    bool       `json:"active"`
	TimeFirst *time.Time `json:"time_first,omitempty"`
	TimeLast  *time.Time `json:"time_last,omitempty"`
}

// ouiSeparators covers every common MAC notation: colon, dash and the
// Cisco dotted-quad style.
var ouiSeparators = strings.NewReplacer(":", "", "-", "", ".", "")

// ExtractOUI returns the vendor prefix of a MAC address: the first three
// octets as six uppercase hex characters, whatever the input separator.
func ExtractOUI(mac string) string {
	flat := ouiSeparators.Replace(mac)
	if len(flat) > 6 {
		flat = flat[:6]
	}

	return strings.ToUpper(flat)
}

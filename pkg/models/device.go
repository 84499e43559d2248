// Package models pkg/models/device.go holds the persisted record types
// shared by the store, workers and API.
package models

import (
	"strings"
	"time"
)

// Device is a network device (switch, router, access point) keyed by IP.
type Device struct {
	IP          string    `json:"ip"`
	DNS         string    `json:"dns,omitempty"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	Location    string    `json:"location,omitempty"`
	Uptime      *int64    `json:"uptime,omitempty"` // hundredths of a second
	Layers      string    `json:"layers,omitempty"` // 7-char OSI capability bitstring
	Model       string    `json:"model,omitempty"`
	Vendor      string    `json:"vendor,omitempty"`
	OS          string    `json:"os,omitempty"`
	OSVer       string    `json:"os_ver,omitempty"`
	Serial      string    `json:"serial,omitempty"`
	SNMPVer     int       `json:"snmp_ver,omitempty"`
	SNMPComm    string    `json:"-"` // never serialized to API clients
	Creation    time.Time `json:"creation"`

	LastDiscover *time.Time `json:"last_discover,omitempty"`
	LastMacsuck  *time.Time `json:"last_macsuck,omitempty"`
	LastArpnip   *time.Time `json:"last_arpnip,omitempty"`
}

// LayersFromServices derives the capability bitstring from the sysServices
// bitmask, one character per OSI layer.
func LayersFromServices(services int64) string {
	var sb strings.Builder

	for i := 0; i < 7; i++ {
		if services&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// HasLayer reports whether the device advertises the given OSI layer.
// Layers are 1-indexed; 0 and anything above 7 are always false.
func (d *Device) HasLayer(layer int) bool {
	if layer < 1 || layer > 7 {
		return false
	}

	idx := 7 - layer
	if len(d.Layers) != 7 {
		return false
	}

	return d.Layers[idx] == '1'
}

// IsSwitch reports layer 2 capability.
func (d *Device) IsSwitch() bool {
	return d.HasLayer(2)
}

// IsRouter reports layer 3 capability.
func (d *Device) IsRouter() bool {
	return d.HasLayer(3)
}

// DisplayName prefers DNS, then sysName, then the IP.
func (d *Device) DisplayName() string {
	if d.DNS != "" {
		return d.DNS
	}

	if d.Name != "" {
		return d.Name
	}

	return d.IP
}

// DevicePort is one interface on a device, keyed by (device IP, port name).
type DevicePort struct {
	IP      string `json:"ip"`
	Port    string `json:"port"`
	Descr   string `json:"descr,omitempty"`
	Up      string `json:"up,omitempty"`       // operational status: "up"/"down"
	UpAdmin string `json:"up_admin,omitempty"` // administrative status
	Type    string `json:"type,omitempty"`
	Speed   string `json:"speed,omitempty"`
	IfIndex int    `json:"ifindex,omitempty"`
}

package snmp

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// SystemInfo is the MIB-II system group. Every field is independently
// best-effort: a device that refuses one object still yields the rest.
type SystemInfo struct {
	Description string
	ObjectID    string
	Uptime      *uint32
	Contact     string
	Name        string
	Location    string
	Services    *int64
}

// Interface is one row of the IF-MIB ifTable, joined across column walks by
// the trailing instance arc (ifIndex). Name, Alias and HighSpeed come from
// the ifXTable and stay zero on agents that lack it.
type Interface struct {
	Index       int
	Descr       string
	Name        string
	Alias       string
	Type        *int64
	Speed       *int64
	HighSpeed   *int64 // megabits per second
	AdminStatus *int64
	OperStatus  *int64
}

// MacEntry is one BRIDGE-MIB forwarding database row.
type MacEntry struct {
	MAC        string
	BridgePort int
}

// ArpEntry is one IP-MIB ipNetToMediaTable row.
type ArpEntry struct {
	IP  string
	MAC string
}

// Neighbor is a remote device seen via LLDP or CDP. Port is the remote
// port identifier and Address the advertised management IP, when the MIB
// provides them.
type Neighbor struct {
	SysName  string
	Platform string
	Port     string
	Address  string
	Source   string
}

// Inventory is the chassis identity from the ENTITY-MIB physical table.
type Inventory struct {
	Descr       string
	Name        string
	SoftwareRev string
	Serial      string
	MfgName     string
	Model       string
}

// SystemInfo fetches the system group, one GET per object.
func (c *Client) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	info := &SystemInfo{}

	if v, err := c.Get(ctx, OIDSysDescr); err == nil {
		info.Description = string(v)
	}

	if v, err := c.Get(ctx, OIDSysObjectID); err == nil {
		if oid, err := decodeOID(v); err == nil {
			info.ObjectID = OIDToString(oid)
		}
	}

	if v, err := c.Get(ctx, OIDSysUpTime); err == nil {
		if ticks, err := DecodeTimeTicks(v); err == nil {
			info.Uptime = &ticks
		}
	}

	if v, err := c.Get(ctx, OIDSysContact); err == nil {
		info.Contact = string(v)
	}

	if v, err := c.Get(ctx, OIDSysName); err == nil {
		info.Name = string(v)
	}

	if v, err := c.Get(ctx, OIDSysLocation); err == nil {
		info.Location = string(v)
	}

	if v, err := c.Get(ctx, OIDSysServices); err == nil {
		if services, err := DecodeInteger(v); err == nil {
			info.Services = &services
		}
	}

	if info.Description == "" && info.Name == "" && info.Uptime == nil && info.Services == nil {
		return nil, fmt.Errorf("%w: no system group objects from %s", ErrNoResponse, c.target)
	}

	return info, nil
}

// Interfaces walks the ifTable columns and joins them by ifIndex.
func (c *Client) Interfaces(ctx context.Context) ([]Interface, error) {
	descrs, err := c.subtree(ctx, OIDIfDescr)
	if err != nil {
		return nil, err
	}

	types := indexedInts(must(c.subtree(ctx, OIDIfType)))
	speeds := indexedInts(must(c.subtree(ctx, OIDIfSpeed)))
	admins := indexedInts(must(c.subtree(ctx, OIDIfAdminStatus)))
	opers := indexedInts(must(c.subtree(ctx, OIDIfOperStatus)))
	names := indexedStrings(must(c.subtree(ctx, OIDIfName)))
	aliases := indexedStrings(must(c.subtree(ctx, OIDIfAlias)))
	highs := indexedInts(must(c.subtree(ctx, OIDIfHighSpeed)))

	ifaces := make([]Interface, 0, len(descrs))

	for i := range descrs {
		bind := descrs[i]
		if len(bind.OID) == 0 {
			continue
		}

		index := int(bind.OID[len(bind.OID)-1])

		ifaces = append(ifaces, Interface{
			Index:       index,
			Descr:       string(bind.Value),
			Name:        names[index],
			Alias:       aliases[index],
			Type:        types[index],
			Speed:       speeds[index],
			HighSpeed:   highs[index],
			AdminStatus: admins[index],
			OperStatus:  opers[index],
		})
	}

	return ifaces, nil
}

// fdbStatusInvalid marks FDB rows the agent itself disowns.
const fdbStatusInvalid = 2

// MacTable walks dot1dTpFdbPort, falling back to the Q-BRIDGE table on
// VLAN-aware switches that leave the plain BRIDGE-MIB one empty. The MAC
// address lives in the trailing six arcs of each instance OID, not in a
// separate value walk.
func (c *Client) MacTable(ctx context.Context) ([]MacEntry, error) {
	binds, err := c.subtree(ctx, OIDDot1dTpFdbPort)
	if err != nil {
		return nil, err
	}

	var statuses map[string]int64

	if len(binds) > 0 {
		statuses = make(map[string]int64)

		for _, bind := range must(c.subtree(ctx, OIDDot1dTpFdbStatus)) {
			if len(bind.OID) < 6 {
				continue
			}

			if v, err := DecodeInteger(bind.Value); err == nil {
				statuses[macFromArcs(bind.OID[len(bind.OID)-6:])] = v
			}
		}
	} else {
		if binds, err = c.subtree(ctx, OIDDot1qTpFdbPort); err != nil {
			return nil, err
		}
	}

	entries := make([]MacEntry, 0, len(binds))

	for i := range binds {
		bind := binds[i]
		if len(bind.OID) < 6 {
			continue
		}

		mac := macFromArcs(bind.OID[len(bind.OID)-6:])
		if statuses[mac] == fdbStatusInvalid {
			continue
		}

		port, err := DecodeInteger(bind.Value)
		if err != nil {
			log.Printf("snmp: skipping FDB row %s: %v", OIDToString(bind.OID), err)
			continue
		}

		entries = append(entries, MacEntry{
			MAC:        mac,
			BridgePort: int(port),
		})
	}

	return entries, nil
}

// arpTypeInvalid marks ipNetToMediaTable rows the agent has withdrawn.
const arpTypeInvalid = 2

// ArpTable walks ipNetToMediaPhysAddress. The IPv4 address lives in the
// trailing four arcs of each instance OID; the MAC is the value bytes.
// Rows the agent marks invalid in the type column are dropped.
func (c *Client) ArpTable(ctx context.Context) ([]ArpEntry, error) {
	binds, err := c.subtree(ctx, OIDIpNetToMediaPhysAddress)
	if err != nil {
		return nil, err
	}

	types := make(map[string]int64)

	for _, bind := range must(c.subtree(ctx, OIDIpNetToMediaType)) {
		if v, err := DecodeInteger(bind.Value); err == nil {
			types[instanceKey(bind.OID, OIDIpNetToMediaType)] = v
		}
	}

	entries := make([]ArpEntry, 0, len(binds))

	for i := range binds {
		bind := binds[i]
		if len(bind.OID) < 4 || len(bind.Value) == 0 {
			continue
		}

		if types[instanceKey(bind.OID, OIDIpNetToMediaPhysAddress)] == arpTypeInvalid {
			continue
		}

		arcs := bind.OID[len(bind.OID)-4:]
		ip := fmt.Sprintf("%d.%d.%d.%d", arcs[0], arcs[1], arcs[2], arcs[3])

		entries = append(entries, ArpEntry{
			IP:  ip,
			MAC: macFromBytes(bind.Value),
		})
	}

	return entries, nil
}

// Neighbors tries LLDP first, then CDP. All walks are best-effort; a
// device with neither MIB yields an empty list, not an error.
func (c *Client) Neighbors(ctx context.Context) ([]Neighbor, error) {
	var neighbors []Neighbor

	lldp, _ := c.subtree(ctx, OIDLldpRemSysName)
	lldpDescs := keyedStrings(must(c.subtree(ctx, OIDLldpRemSysDesc)), OIDLldpRemSysDesc)
	lldpPorts := keyedStrings(must(c.subtree(ctx, OIDLldpRemPortID)), OIDLldpRemPortID)

	for i := range lldp {
		key := instanceKey(lldp[i].OID, OIDLldpRemSysName)

		neighbors = append(neighbors, Neighbor{
			SysName:  string(lldp[i].Value),
			Platform: lldpDescs[key],
			Port:     lldpPorts[key],
			Source:   "lldp",
		})
	}

	cdp, _ := c.subtree(ctx, OIDCdpCacheDeviceID)
	cdpPlatforms := keyedStrings(must(c.subtree(ctx, OIDCdpCachePlatform)), OIDCdpCachePlatform)

	cdpAddrs := make(map[string]string)

	for _, bind := range must(c.subtree(ctx, OIDCdpCacheAddress)) {
		if v := bind.Value; len(v) == 4 {
			cdpAddrs[instanceKey(bind.OID, OIDCdpCacheAddress)] = fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
		}
	}

	for i := range cdp {
		key := instanceKey(cdp[i].OID, OIDCdpCacheDeviceID)

		neighbors = append(neighbors, Neighbor{
			SysName:  string(cdp[i].Value),
			Platform: cdpPlatforms[key],
			Address:  cdpAddrs[key],
			Source:   "cdp",
		})
	}

	return neighbors, nil
}

// Inventory walks the entPhysical identity columns and keeps the first
// non-empty value of each, which on nearly every device is the chassis
// row. A device without the ENTITY-MIB yields an empty Inventory.
func (c *Client) Inventory(ctx context.Context) (*Inventory, error) {
	return &Inventory{
		Descr:       firstString(must(c.subtree(ctx, OIDEntPhysicalDescr))),
		Name:        firstString(must(c.subtree(ctx, OIDEntPhysicalName))),
		SoftwareRev: firstString(must(c.subtree(ctx, OIDEntPhysicalSoftwareRev))),
		Serial:      firstString(must(c.subtree(ctx, OIDEntPhysicalSerial))),
		MfgName:     firstString(must(c.subtree(ctx, OIDEntPhysicalMfgName))),
		Model:       firstString(must(c.subtree(ctx, OIDEntPhysicalModel))),
	}, nil
}

// indexedInts maps trailing-arc instance index to decoded integer value.
func indexedInts(binds []VarBind) map[int]*int64 {
	out := make(map[int]*int64, len(binds))

	for i := range binds {
		bind := binds[i]
		if len(bind.OID) == 0 {
			continue
		}

		v, err := DecodeInteger(bind.Value)
		if err != nil {
			continue
		}

		out[int(bind.OID[len(bind.OID)-1])] = &v
	}

	return out
}

// indexedStrings maps trailing-arc instance index to the string value.
func indexedStrings(binds []VarBind) map[int]string {
	out := make(map[int]string, len(binds))

	for i := range binds {
		bind := binds[i]
		if len(bind.OID) == 0 {
			continue
		}

		out[int(bind.OID[len(bind.OID)-1])] = string(bind.Value)
	}

	return out
}

// keyedStrings maps instance suffix to string value for one table column.
func keyedStrings(binds []VarBind, column []uint32) map[string]string {
	out := make(map[string]string, len(binds))

	for i := range binds {
		out[instanceKey(binds[i].OID, column)] = string(binds[i].Value)
	}

	return out
}

// firstString returns the first non-blank value of a column walk.
func firstString(binds []VarBind) string {
	for i := range binds {
		if v := strings.TrimSpace(string(binds[i].Value)); v != "" {
			return v
		}
	}

	return ""
}

// instanceKey renders the arcs after the column prefix, for joining rows of
// tables with multi-arc indexes.
func instanceKey(oid, column []uint32) string {
	if !oidHasPrefix(oid, column) {
		return OIDToString(oid)
	}

	return OIDToString(oid[len(column):])
}

func macFromArcs(arcs []uint32) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = fmt.Sprintf("%02x", a&0xff)
	}

	return strings.Join(parts, ":")
}

func macFromBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, octet := range b {
		parts[i] = fmt.Sprintf("%02x", octet)
	}

	return strings.Join(parts, ":")
}

// must drops walk errors: column walks inside a join are best-effort and an
// absent column just leaves those fields unset.
func must(binds []VarBind, err error) []VarBind {
	if err != nil {
		return nil
	}

	return binds
}

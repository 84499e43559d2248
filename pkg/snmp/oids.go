package snmp

// Standard OIDs walked or fetched during polling. Scalar objects carry the
// .0 instance suffix; table columns do not.

// SNMPv2-MIB system group (1.3.6.1.2.1.1).
var (
	OIDSysDescr    = []uint32{1, 3, 6, 1, 2, 1, 1, 1, 0}
	OIDSysObjectID = []uint32{1, 3, 6, 1, 2, 1, 1, 2, 0}
	OIDSysUpTime   = []uint32{1, 3, 6, 1, 2, 1, 1, 3, 0}
	OIDSysContact  = []uint32{1, 3, 6, 1, 2, 1, 1, 4, 0}
	OIDSysName     = []uint32{1, 3, 6, 1, 2, 1, 1, 5, 0}
	OIDSysLocation = []uint32{1, 3, 6, 1, 2, 1, 1, 6, 0}
	OIDSysServices = []uint32{1, 3, 6, 1, 2, 1, 1, 7, 0}
)

// IF-MIB interface table (1.3.6.1.2.1.2.2.1).
var (
	OIDIfDescr       = []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	OIDIfType        = []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 3}
	OIDIfSpeed       = []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 5}
	OIDIfAdminStatus = []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 7}
	OIDIfOperStatus  = []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 8}
)

// IF-MIB ifXTable extensions (1.3.6.1.2.1.31.1.1.1).
var (
	OIDIfName      = []uint32{1, 3, 6, 1, 2, 1, 31, 1, 1, 1, 1}
	OIDIfHighSpeed = []uint32{1, 3, 6, 1, 2, 1, 31, 1, 1, 1, 15}
	OIDIfAlias     = []uint32{1, 3, 6, 1, 2, 1, 31, 1, 1, 1, 18}
)

// BRIDGE-MIB forwarding database (1.3.6.1.2.1.17.4.3.1). The MAC address is
// the trailing six arcs of each instance OID.
var (
	OIDDot1dTpFdbPort   = []uint32{1, 3, 6, 1, 2, 1, 17, 4, 3, 1, 2}
	OIDDot1dTpFdbStatus = []uint32{1, 3, 6, 1, 2, 1, 17, 4, 3, 1, 3}
)

// Q-BRIDGE-MIB VLAN-aware forwarding database port column
// (1.3.6.1.2.1.17.7.1.2.2.1.2). The instance is fdbId followed by the six
// MAC arcs.
var OIDDot1qTpFdbPort = []uint32{1, 3, 6, 1, 2, 1, 17, 7, 1, 2, 2, 1, 2}

// IP-MIB ipNetToMediaTable (1.3.6.1.2.1.4.22.1). The IPv4 address is the
// trailing four arcs of each instance OID.
var (
	OIDIpNetToMediaPhysAddress = []uint32{1, 3, 6, 1, 2, 1, 4, 22, 1, 2}
	OIDIpNetToMediaType        = []uint32{1, 3, 6, 1, 2, 1, 4, 22, 1, 4}
)

// ENTITY-MIB physical inventory (1.3.6.1.2.1.47.1.1.1.1).
var (
	OIDEntPhysicalDescr       = []uint32{1, 3, 6, 1, 2, 1, 47, 1, 1, 1, 1, 2}
	OIDEntPhysicalName        = []uint32{1, 3, 6, 1, 2, 1, 47, 1, 1, 1, 1, 7}
	OIDEntPhysicalSoftwareRev = []uint32{1, 3, 6, 1, 2, 1, 47, 1, 1, 1, 1, 10}
	OIDEntPhysicalSerial      = []uint32{1, 3, 6, 1, 2, 1, 47, 1, 1, 1, 1, 11}
	OIDEntPhysicalMfgName     = []uint32{1, 3, 6, 1, 2, 1, 47, 1, 1, 1, 1, 12}
	OIDEntPhysicalModel       = []uint32{1, 3, 6, 1, 2, 1, 47, 1, 1, 1, 1, 13}
)

// LLDP-MIB remote systems (1.0.8802.1.1.2.1.4).
var (
	OIDLldpRemPortID  = []uint32{1, 0, 8802, 1, 1, 2, 1, 4, 1, 1, 7}
	OIDLldpRemSysName = []uint32{1, 0, 8802, 1, 1, 2, 1, 4, 1, 1, 9}
	OIDLldpRemSysDesc = []uint32{1, 0, 8802, 1, 1, 2, 1, 4, 1, 1, 10}
)

// CISCO-CDP-MIB cache (1.3.6.1.4.1.9.9.23.1.2.1.1).
var (
	OIDCdpCacheAddress  = []uint32{1, 3, 6, 1, 4, 1, 9, 9, 23, 1, 2, 1, 1, 4}
	OIDCdpCacheDeviceID = []uint32{1, 3, 6, 1, 4, 1, 9, 9, 23, 1, 2, 1, 1, 6}
	OIDCdpCachePlatform = []uint32{1, 3, 6, 1, 4, 1, 9, 9, 23, 1, 2, 1, 1, 8}
)

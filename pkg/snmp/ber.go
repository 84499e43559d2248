// Package snmp implements a minimal SNMP v1/v2c client: BER message
// encoding/decoding and a UDP transport with retries.
package snmp

import (
	"fmt"
	"math/rand"
)

// ASN.1/BER tags used in SNMP messages.
const (
	tagInteger     = 0x02
	tagOctetString = 0x04
	tagNull        = 0x05
	tagObjectID    = 0x06
	tagSequence    = 0x30
	tagIPAddress   = 0x40
	tagCounter32   = 0x41
	tagGauge32     = 0x42
	tagTimeTicks   = 0x43
	tagCounter64   = 0x46

	// Context-class exception values (SNMPv2c varbind values).
	tagNoSuchObject   = 0x80
	tagNoSuchInstance = 0x81
	tagEndOfMibView   = 0x82
)

// PDUType identifies the SNMP operation carried in a message.
type PDUType byte

const (
	PDUGetRequest     PDUType = 0xA0
	PDUGetNextRequest PDUType = 0xA1
	PDUGetResponse    PDUType = 0xA2
	PDUGetBulkRequest PDUType = 0xA5
)

// Version is the SNMP protocol version as encoded on the wire.
type Version int

const (
	Version1  Version = 0
	Version2c Version = 1
	Version3  Version = 3
)

// VersionFromNumber maps the human version number (1, 2, 3) to its wire
// encoding. Anything unrecognized reads as v2c.
func VersionFromNumber(n int) Version {
	switch n {
	case 1:
		return Version1
	case 3:
		return Version3
	default:
		return Version2c
	}
}

// VarBind is a single (OID, value) pair from a response. Tag is the BER tag
// of the value so callers can pick the right numeric interpretation.
type VarBind struct {
	OID   []uint32
	Tag   byte
	Value []byte
}

// ProtocolError is a non-zero error-status returned by the agent.
type ProtocolError struct {
	Status int
}

var errStatusNames = map[int]string{
	1: "tooBig",
	2: "noSuchName",
	3: "badValue",
	4: "readOnly",
	5: "genErr",
	6: "noAccess",
	7: "wrongType",
}

// Name returns the symbolic name for the error-status code.
func (e *ProtocolError) Name() string {
	if name, ok := errStatusNames[e.Status]; ok {
		return name
	}

	return "unknown"
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("snmp error-status %d (%s)", e.Status, e.Name())
}

// encodeLength appends a BER length field: short form below 128, long form
// (0x81/0x82 prefix) otherwise. Applied to every TLV, nested or not.
func encodeLength(dst []byte, n int) []byte {
	switch {
	case n < 0x80:
		return append(dst, byte(n))
	case n < 0x100:
		return append(dst, 0x81, byte(n))
	default:
		return append(dst, 0x82, byte(n>>8), byte(n))
	}
}

func appendTLV(dst []byte, tag byte, content []byte) []byte {
	dst = append(dst, tag)
	dst = encodeLength(dst, len(content))

	return append(dst, content...)
}

// encodeInt produces a minimal-length two's-complement INTEGER body for a
// non-negative value.
func encodeInt(v int) []byte {
	if v == 0 {
		return []byte{0}
	}

	var body []byte
	for u := uint64(v); u > 0; u >>= 8 {
		body = append([]byte{byte(u)}, body...)
	}

	// A set high bit would flip the sign; pad with a leading zero.
	if body[0]&0x80 != 0 {
		body = append([]byte{0}, body...)
	}

	return body
}

// encodeOID packs an OID body: the first two arcs collapse into one byte,
// the rest use base-128 continuation encoding.
func encodeOID(oid []uint32) ([]byte, error) {
	if len(oid) < 2 {
		return nil, fmt.Errorf("%w: need at least two arcs, got %d", errBadOID, len(oid))
	}

	if oid[0] > 2 || oid[1] > 39 {
		return nil, fmt.Errorf("%w: first arcs %d.%d out of range", errBadOID, oid[0], oid[1])
	}

	body := []byte{byte(oid[0]*40 + oid[1])}

	for _, arc := range oid[2:] {
		if arc < 0x80 {
			body = append(body, byte(arc))
			continue
		}

		var parts []byte
		for v := arc; v > 0; v >>= 7 {
			parts = append([]byte{byte(v&0x7f) | 0x80}, parts...)
		}

		parts[len(parts)-1] &= 0x7f
		body = append(body, parts...)
	}

	return body, nil
}

// EncodeRequest builds a full SNMP message for one OID with a NULL value
// placeholder. For GETBULK, maxReps is the max-repetitions field; it is
// ignored for the other PDU types.
func EncodeRequest(op PDUType, version Version, community string, oid []uint32, maxReps int) ([]byte, error) {
	oidBody, err := encodeOID(oid)
	if err != nil {
		return nil, err
	}

	var varbind []byte
	varbind = appendTLV(varbind, tagObjectID, oidBody)
	varbind = append(varbind, tagNull, 0x00)

	var bindList []byte
	bindList = appendTLV(bindList, tagSequence, varbind)

	// A fresh request-id per message decorrelates retransmitted requests
	// from stale responses.
	requestID := rand.Intn(1 << 16)

	var pdu []byte
	pdu = appendTLV(pdu, tagInteger, encodeInt(requestID))

	if op == PDUGetBulkRequest {
		pdu = appendTLV(pdu, tagInteger, encodeInt(0)) // non-repeaters
		pdu = appendTLV(pdu, tagInteger, encodeInt(maxReps))
	} else {
		pdu = appendTLV(pdu, tagInteger, encodeInt(0)) // error-status
		pdu = appendTLV(pdu, tagInteger, encodeInt(0)) // error-index
	}

	pdu = appendTLV(pdu, tagSequence, bindList)

	wireVersion := version
	if wireVersion == Version3 {
		// SNMPv3 security is not implemented; the caller is warned at
		// client construction and the message goes out as v2c.
		wireVersion = Version2c
	}

	var msg []byte
	msg = appendTLV(msg, tagInteger, encodeInt(int(wireVersion)))
	msg = appendTLV(msg, tagOctetString, []byte(community))
	msg = appendTLV(msg, byte(op), pdu)

	var out []byte

	return appendTLV(out, tagSequence, msg), nil
}

// decoder steps through a BER buffer with bounds checking on every read.
type decoder struct {
	buf []byte
	off int
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.off
}

func (d *decoder) readByte() (byte, error) {
	if d.off >= len(d.buf) {
		return 0, errTruncated
	}

	b := d.buf[d.off]
	d.off++

	return b, nil
}

func (d *decoder) readLength() (int, error) {
	first, err := d.readByte()
	if err != nil {
		return 0, err
	}

	if first < 0x80 {
		return int(first), nil
	}

	count := int(first & 0x7f)
	if count == 0 || count > 2 {
		return 0, fmt.Errorf("%w: unsupported long form 0x%02x", errBadLength, first)
	}

	n := 0

	for i := 0; i < count; i++ {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}

		n = n<<8 | int(b)
	}

	return n, nil
}

// readTLV consumes one tag-length-value and returns the tag and value bytes.
func (d *decoder) readTLV() (byte, []byte, error) {
	tag, err := d.readByte()
	if err != nil {
		return 0, nil, err
	}

	length, err := d.readLength()
	if err != nil {
		return 0, nil, err
	}

	if length > d.remaining() {
		return 0, nil, fmt.Errorf("%w: length %d exceeds %d remaining", errTruncated, length, d.remaining())
	}

	val := d.buf[d.off : d.off+length]
	d.off += length

	return tag, val, nil
}

// expectTLV reads one TLV and fails unless it carries the wanted tag.
func (d *decoder) expectTLV(want byte) ([]byte, error) {
	tag, val, err := d.readTLV()
	if err != nil {
		return nil, err
	}

	if tag != want {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", errUnexpectedTag, tag, want)
	}

	return val, nil
}

// decodeOID unpacks an OID body. A continuation bit set on the final byte of
// the buffer means the last arc is cut off mid-encoding.
func decodeOID(body []byte) ([]uint32, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty OID", errBadOID)
	}

	first := body[0]

	var oid []uint32

	switch {
	case first < 40:
		oid = append(oid, 0, uint32(first))
	case first < 80:
		oid = append(oid, 1, uint32(first-40))
	default:
		oid = append(oid, 2, uint32(first-80))
	}

	var arc uint32

	mid := false

	for _, b := range body[1:] {
		arc = arc<<7 | uint32(b&0x7f)

		if b&0x80 != 0 {
			mid = true
			continue
		}

		oid = append(oid, arc)
		arc = 0
		mid = false
	}

	if mid {
		return nil, fmt.Errorf("%w: OID arc continues past buffer", errTruncated)
	}

	return oid, nil
}

// DecodeResponse validates a GetResponse message and returns its varbinds.
// Varbinds carrying endOfMibView/noSuchObject/noSuchInstance are dropped:
// they mean the subtree ran out, not that the exchange failed.
func DecodeResponse(buf []byte) ([]VarBind, error) {
	outer := &decoder{buf: buf}

	msg, err := outer.expectTLV(tagSequence)
	if err != nil {
		return nil, err
	}

	d := &decoder{buf: msg}

	if _, err := d.expectTLV(tagInteger); err != nil { // version
		return nil, err
	}

	if _, err := d.expectTLV(tagOctetString); err != nil { // community
		return nil, err
	}

	pdu, err := d.expectTLV(byte(PDUGetResponse))
	if err != nil {
		return nil, err
	}

	p := &decoder{buf: pdu}

	if _, err := p.expectTLV(tagInteger); err != nil { // request-id
		return nil, err
	}

	statusBody, err := p.expectTLV(tagInteger)
	if err != nil {
		return nil, err
	}

	status, err := DecodeInteger(statusBody)
	if err != nil {
		return nil, err
	}

	if status != 0 {
		return nil, &ProtocolError{Status: int(status)}
	}

	if _, err := p.expectTLV(tagInteger); err != nil { // error-index
		return nil, err
	}

	bindList, err := p.expectTLV(tagSequence)
	if err != nil {
		return nil, err
	}

	binds := &decoder{buf: bindList}

	var out []VarBind

	for binds.remaining() > 0 {
		bind, err := binds.expectTLV(tagSequence)
		if err != nil {
			return nil, err
		}

		b := &decoder{buf: bind}

		oidBody, err := b.expectTLV(tagObjectID)
		if err != nil {
			return nil, err
		}

		oid, err := decodeOID(oidBody)
		if err != nil {
			return nil, err
		}

		tag, val, err := b.readTLV()
		if err != nil {
			return nil, err
		}

		switch tag {
		case tagEndOfMibView, tagNoSuchObject, tagNoSuchInstance:
			continue
		}

		out = append(out, VarBind{OID: oid, Tag: tag, Value: val})
	}

	return out, nil
}

// DecodeInteger interprets an INTEGER body as signed two's complement of
// width 1, 2, 4 or 8 bytes.
func DecodeInteger(body []byte) (int64, error) {
	switch len(body) {
	case 1:
		return int64(int8(body[0])), nil
	case 2:
		return int64(int16(uint16(body[0])<<8 | uint16(body[1]))), nil
	case 4:
		return int64(int32(uint32(body[0])<<24 | uint32(body[1])<<16 | uint32(body[2])<<8 | uint32(body[3]))), nil
	case 8:
		var v uint64
		for _, b := range body {
			v = v<<8 | uint64(b)
		}

		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: integer width %d", errBadLength, len(body))
	}
}

// DecodeTimeTicks interprets a TimeTicks body as an unsigned 32-bit counter.
// Uptimes routinely exceed the signed 32-bit range, so this must not share
// DecodeInteger's sign handling.
func DecodeTimeTicks(body []byte) (uint32, error) {
	if len(body) == 0 || len(body) > 4 {
		return 0, fmt.Errorf("%w: timeticks width %d", errBadLength, len(body))
	}

	var v uint32
	for _, b := range body {
		v = v<<8 | uint32(b)
	}

	return v, nil
}

// OIDToString renders an OID in dotted-decimal form.
func OIDToString(oid []uint32) string {
	out := ""
	for i, arc := range oid {
		if i > 0 {
			out += "."
		}

		out += fmt.Sprintf("%d", arc)
	}

	return out
}

// oidHasPrefix reports whether oid begins with the arcs of prefix.
func oidHasPrefix(oid, prefix []uint32) bool {
	if len(oid) < len(prefix) {
		return false
	}

	for i, arc := range prefix {
		if oid[i] != arc {
			return false
		}
	}

	return true
}

// oidCompare orders two OIDs lexicographically by arc.
func oidCompare(a, b []uint32) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

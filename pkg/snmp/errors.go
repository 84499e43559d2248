package snmp

import "errors"

var (
	// Decode failures: the agent replied with bytes we cannot parse.
	errTruncated     = errors.New("snmp: truncated message")
	errBadLength     = errors.New("snmp: bad length encoding")
	errUnexpectedTag = errors.New("snmp: unexpected tag")
	errBadOID        = errors.New("snmp: bad OID")

	// Transport failures: the agent never replied usably.
	ErrTimeout    = errors.New("snmp: request timed out")
	ErrNoResponse = errors.New("snmp: empty response")
)

// IsDecodeError reports whether err is a BER decode failure, as opposed to a
// transport or protocol error.
func IsDecodeError(err error) bool {
	return errors.Is(err, errTruncated) ||
		errors.Is(err, errBadLength) ||
		errors.Is(err, errUnexpectedTag) ||
		errors.Is(err, errBadOID)
}

// Package permission implements the per-operation access control lists.
// Every discovery routine checks its target address here before any
// network traffic is sent.
package permission

import (
	"net/netip"
	"strings"
)

// Wildcard list entries that match every address.
const (
	wildcardV4  = "0.0.0.0/0"
	wildcardV6  = "::/0"
	wildcardAny = "group:__ANY__"
)

// matches reports whether addr is covered by one list entry. An entry is
// an exact IP, a CIDR block, or a wildcard token. Malformed entries
// never match.
func matches(addr netip.Addr, entry string) bool {
	entry = strings.TrimSpace(entry)

	switch entry {
	case wildcardV4, wildcardV6, wildcardAny:
		return true
	}

	if prefix, err := netip.ParsePrefix(entry); err == nil {
		return prefix.Contains(addr)
	}

	if exact, err := netip.ParseAddr(entry); err == nil {
		return exact == addr
	}

	return false
}

func matchesAny(addr netip.Addr, entries []string) bool {
	for _, entry := range entries {
		if matches(addr, entry) {
			return true
		}
	}

	return false
}

// IsPermitted reports whether ip may be targeted by an operation with
// the given allow and deny lists. Deny wins over allow; an empty allow
// list permits everything not denied. An unparseable ip is never
// permitted.
func IsPermitted(ip string, allow, deny []string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}

	addr = addr.Unmap()

	if matchesAny(addr, deny) {
		return false
	}

	return len(allow) == 0 || matchesAny(addr, allow)
}

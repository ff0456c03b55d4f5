// Package netutil provides small helpers for rendering and membership
// arithmetic on capture addresses.
package netutil

import "net"

// IPString renders a raw 4- or 16-byte address as text.
func IPString(raw []byte) string {
	return net.IP(raw).String()
}

// Contains reports whether candidate falls inside the network described by
// network and mask. Nil arguments never match.
func Contains(candidate, network net.IP, mask net.IPMask) bool {
	if candidate == nil || network == nil || mask == nil {
		return false
	}
	return candidate.Mask(mask).Equal(network.Mask(mask))
}

// FormatCIDR renders a network and mask in prefix notation, e.g.
// "192.168.1.0/24". It returns "" when either argument is nil.
func FormatCIDR(network net.IP, mask net.IPMask) string {
	if network == nil || mask == nil {
		return ""
	}
	n := net.IPNet{IP: network.Mask(mask), Mask: mask}
	return n.String()
}

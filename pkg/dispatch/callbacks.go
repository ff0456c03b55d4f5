package dispatch

import "github.com/endorses/pawcap/pkg/decode"

// Callbacks enumerates every recognized classification key with one handler
// slot per key. Using an explicit struct keeps unknown keys unrepresentable
// and duplicate registrations impossible at configuration time.
type Callbacks struct {
	TCP  Handler
	UDP  Handler
	IGMP Handler
	IPv4 Handler

	ICMP                Handler
	ICMPEchoReply       Handler
	ICMPUnreach         Handler
	ICMPSourceQuench    Handler
	ICMPRedirect        Handler
	ICMPEcho            Handler
	ICMPRouterAdvert    Handler
	ICMPRouterSolicit   Handler
	ICMPTimeExceeded    Handler
	ICMPParamProblem    Handler
	ICMPTimestamp       Handler
	ICMPTimestampReply  Handler
	ICMPInfoRequest     Handler
	ICMPInfoReply       Handler

	ARP         Handler
	ARPRequest  Handler
	ARPReply    Handler
	RARPRequest Handler
	RARPReply   Handler

	IPv6      Handler
	SNMP      Handler
	PPP       Handler
	AppleTalk Handler

	// Default is the catch-all handler invoked when no key in a frame's
	// priority chain has a handler.
	Default Handler
}

// Registry builds the immutable registry from the populated slots.
func (c *Callbacks) Registry() *Registry {
	r := NewRegistry()
	for key, h := range map[decode.Classification]Handler{
		decode.ClassTCP:  c.TCP,
		decode.ClassUDP:  c.UDP,
		decode.ClassIGMP: c.IGMP,
		decode.ClassIPv4: c.IPv4,

		decode.ClassICMP:                c.ICMP,
		decode.ClassICMPEchoReply:       c.ICMPEchoReply,
		decode.ClassICMPUnreach:         c.ICMPUnreach,
		decode.ClassICMPSourceQuench:    c.ICMPSourceQuench,
		decode.ClassICMPRedirect:        c.ICMPRedirect,
		decode.ClassICMPEcho:            c.ICMPEcho,
		decode.ClassICMPRouterAdvert:    c.ICMPRouterAdvert,
		decode.ClassICMPRouterSolicit:   c.ICMPRouterSolicit,
		decode.ClassICMPTimeExceeded:    c.ICMPTimeExceeded,
		decode.ClassICMPParamProblem:    c.ICMPParamProblem,
		decode.ClassICMPTimestamp:       c.ICMPTimestamp,
		decode.ClassICMPTimestampReply:  c.ICMPTimestampReply,
		decode.ClassICMPInfoRequest:     c.ICMPInfoRequest,
		decode.ClassICMPInfoReply:       c.ICMPInfoReply,

		decode.ClassARP:         c.ARP,
		decode.ClassARPRequest:  c.ARPRequest,
		decode.ClassARPReply:    c.ARPReply,
		decode.ClassRARPRequest: c.RARPRequest,
		decode.ClassRARPReply:   c.RARPReply,

		decode.ClassIPv6:      c.IPv6,
		decode.ClassSNMP:      c.SNMP,
		decode.ClassPPP:       c.PPP,
		decode.ClassAppleTalk: c.AppleTalk,

		decode.ClassDefault: c.Default,
	} {
		if h != nil {
			r.handlers[key] = h
		}
	}
	return r
}

// Empty reports whether no handler slot is populated.
func (c *Callbacks) Empty() bool {
	return c.Registry().Len() == 0
}

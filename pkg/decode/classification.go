package decode

import "github.com/google/gopacket/layers"

// Classification identifies the most specific protocol key a decoded frame
// reached. Classifications double as handler registry keys, except for
// ClassOther which only tags frames no key covers.
type Classification string

const (
	ClassTCP  Classification = "tcp"
	ClassUDP  Classification = "udp"
	ClassICMP Classification = "icmp"
	ClassIGMP Classification = "igmp"
	ClassIPv4 Classification = "ipv4"

	// ICMP subtype refinements, selected by the ICMP type byte. An
	// unrecognized type still classifies as generic ClassICMP.
	ClassICMPEchoReply      Classification = "icmp-echo-reply"
	ClassICMPUnreach        Classification = "icmp-unreachable"
	ClassICMPSourceQuench   Classification = "icmp-source-quench"
	ClassICMPRedirect       Classification = "icmp-redirect"
	ClassICMPEcho           Classification = "icmp-echo"
	ClassICMPRouterAdvert   Classification = "icmp-router-advertisement"
	ClassICMPRouterSolicit  Classification = "icmp-router-solicitation"
	ClassICMPTimeExceeded   Classification = "icmp-time-exceeded"
	ClassICMPParamProblem   Classification = "icmp-parameter-problem"
	ClassICMPTimestamp      Classification = "icmp-timestamp"
	ClassICMPTimestampReply Classification = "icmp-timestamp-reply"
	ClassICMPInfoRequest    Classification = "icmp-info-request"
	ClassICMPInfoReply      Classification = "icmp-info-reply"

	// ARP subtype refinements, selected by opcode. RARP shares the ARP wire
	// format; an unrecognized opcode classifies as generic ClassARP.
	ClassARP         Classification = "arp"
	ClassARPRequest  Classification = "arp-request"
	ClassARPReply    Classification = "arp-reply"
	ClassRARPRequest Classification = "rarp-request"
	ClassRARPReply   Classification = "rarp-reply"

	// Known network protocols with no structured decode beyond the link
	// layer.
	ClassIPv6      Classification = "ipv6"
	ClassSNMP      Classification = "snmp"
	ClassPPP       Classification = "ppp"
	ClassAppleTalk Classification = "appletalk"

	// ClassOther tags well-formed frames carrying a protocol outside the
	// taxonomy. It is not a registry key; such frames fall through to the
	// default handler.
	ClassOther Classification = "other"

	// ClassDefault is the catch-all registry key.
	ClassDefault Classification = "default"
)

// Ethertypes gopacket/layers does not name.
const (
	ethernetTypeRARP      layers.EthernetType = 0x8035
	ethernetTypeAppleTalk layers.EthernetType = 0x809b
	ethernetTypeSNMP      layers.EthernetType = 0x814c
)

// RARP opcodes. gopacket names only the ARP pair.
const (
	arpOpRARPRequest uint16 = 3
	arpOpRARPReply   uint16 = 4
)

var icmpSubtypes = map[uint8]Classification{
	layers.ICMPv4TypeEchoReply:              ClassICMPEchoReply,
	layers.ICMPv4TypeDestinationUnreachable: ClassICMPUnreach,
	layers.ICMPv4TypeSourceQuench:           ClassICMPSourceQuench,
	layers.ICMPv4TypeRedirect:               ClassICMPRedirect,
	layers.ICMPv4TypeEchoRequest:            ClassICMPEcho,
	layers.ICMPv4TypeRouterAdvertisement:    ClassICMPRouterAdvert,
	layers.ICMPv4TypeRouterSolicitation:     ClassICMPRouterSolicit,
	layers.ICMPv4TypeTimeExceeded:           ClassICMPTimeExceeded,
	layers.ICMPv4TypeParameterProblem:       ClassICMPParamProblem,
	layers.ICMPv4TypeTimestampRequest:       ClassICMPTimestamp,
	layers.ICMPv4TypeTimestampReply:         ClassICMPTimestampReply,
	layers.ICMPv4TypeInfoRequest:            ClassICMPInfoRequest,
	layers.ICMPv4TypeInfoReply:              ClassICMPInfoReply,
}

var arpSubtypes = map[uint16]Classification{
	layers.ARPRequest: ClassARPRequest,
	layers.ARPReply:   ClassARPReply,
	arpOpRARPRequest:  ClassRARPRequest,
	arpOpRARPReply:    ClassRARPReply,
}

var registryKeys = map[Classification]struct{}{
	ClassTCP: {}, ClassUDP: {}, ClassICMP: {}, ClassIGMP: {}, ClassIPv4: {},
	ClassICMPEchoReply: {}, ClassICMPUnreach: {}, ClassICMPSourceQuench: {},
	ClassICMPRedirect: {}, ClassICMPEcho: {}, ClassICMPRouterAdvert: {},
	ClassICMPRouterSolicit: {}, ClassICMPTimeExceeded: {}, ClassICMPParamProblem: {},
	ClassICMPTimestamp: {}, ClassICMPTimestampReply: {}, ClassICMPInfoRequest: {},
	ClassICMPInfoReply: {},
	ClassARP:           {}, ClassARPRequest: {}, ClassARPReply: {},
	ClassRARPRequest: {}, ClassRARPReply: {},
	ClassIPv6: {}, ClassSNMP: {}, ClassPPP: {}, ClassAppleTalk: {},
	ClassDefault: {},
}

// ValidKey reports whether c names a handler registry key.
func (c Classification) ValidKey() bool {
	_, ok := registryKeys[c]
	return ok
}

package sniff

import (
	"fmt"

	"github.com/endorses/pawcap/pkg/decode"
	"github.com/endorses/pawcap/pkg/dispatch"
	"github.com/endorses/pawcap/pkg/netutil"
	"github.com/google/gopacket"
)

// printFrame is the handler bound to every selected classification key.
func printFrame(_ dispatch.Session, f *decode.Frame, ci gopacket.CaptureInfo) {
	fmt.Printf("%s  %-26s %s  len=%d\n",
		ci.Timestamp.Format("15:04:05.000000"), f.Class, endpoints(f), ci.Length)
}

func endpoints(f *decode.Frame) string {
	switch {
	case f.TCP != nil:
		return fmt.Sprintf("%s:%d > %s:%d", f.IPv4.SrcIP, f.TCP.SrcPort, f.IPv4.DstIP, f.TCP.DstPort)
	case f.UDP != nil:
		return fmt.Sprintf("%s:%d > %s:%d", f.IPv4.SrcIP, f.UDP.SrcPort, f.IPv4.DstIP, f.UDP.DstPort)
	case f.IPv4 != nil:
		return fmt.Sprintf("%s > %s", f.IPv4.SrcIP, f.IPv4.DstIP)
	case f.ARP != nil:
		return fmt.Sprintf("%s > %s",
			netutil.IPString(f.ARP.SourceProtAddress), netutil.IPString(f.ARP.DstProtAddress))
	default:
		return fmt.Sprintf("%s > %s", f.Link.SrcMAC, f.Link.DstMAC)
	}
}

// callbackSlot maps a user-supplied key string to its slot in the explicit
// callbacks struct. Unknown keys return nil.
func callbackSlot(cb *dispatch.Callbacks, key string) *dispatch.Handler {
	switch decode.Classification(key) {
	case decode.ClassTCP:
		return &cb.TCP
	case decode.ClassUDP:
		return &cb.UDP
	case decode.ClassIGMP:
		return &cb.IGMP
	case decode.ClassIPv4:
		return &cb.IPv4
	case decode.ClassICMP:
		return &cb.ICMP
	case decode.ClassICMPEchoReply:
		return &cb.ICMPEchoReply
	case decode.ClassICMPUnreach:
		return &cb.ICMPUnreach
	case decode.ClassICMPSourceQuench:
		return &cb.ICMPSourceQuench
	case decode.ClassICMPRedirect:
		return &cb.ICMPRedirect
	case decode.ClassICMPEcho:
		return &cb.ICMPEcho
	case decode.ClassICMPRouterAdvert:
		return &cb.ICMPRouterAdvert
	case decode.ClassICMPRouterSolicit:
		return &cb.ICMPRouterSolicit
	case decode.ClassICMPTimeExceeded:
		return &cb.ICMPTimeExceeded
	case decode.ClassICMPParamProblem:
		return &cb.ICMPParamProblem
	case decode.ClassICMPTimestamp:
		return &cb.ICMPTimestamp
	case decode.ClassICMPTimestampReply:
		return &cb.ICMPTimestampReply
	case decode.ClassICMPInfoRequest:
		return &cb.ICMPInfoRequest
	case decode.ClassICMPInfoReply:
		return &cb.ICMPInfoReply
	case decode.ClassARP:
		return &cb.ARP
	case decode.ClassARPRequest:
		return &cb.ARPRequest
	case decode.ClassARPReply:
		return &cb.ARPReply
	case decode.ClassRARPRequest:
		return &cb.RARPRequest
	case decode.ClassRARPReply:
		return &cb.RARPReply
	case decode.ClassIPv6:
		return &cb.IPv6
	case decode.ClassSNMP:
		return &cb.SNMP
	case decode.ClassPPP:
		return &cb.PPP
	case decode.ClassAppleTalk:
		return &cb.AppleTalk
	case decode.ClassDefault:
		return &cb.Default
	}
	return nil
}

// allSlots returns every callback slot, used when no --proto selection was
// given.
func allSlots(cb *dispatch.Callbacks) []*dispatch.Handler {
	return []*dispatch.Handler{
		&cb.TCP, &cb.UDP, &cb.IGMP, &cb.IPv4,
		&cb.ICMP, &cb.ICMPEchoReply, &cb.ICMPUnreach, &cb.ICMPSourceQuench,
		&cb.ICMPRedirect, &cb.ICMPEcho, &cb.ICMPRouterAdvert, &cb.ICMPRouterSolicit,
		&cb.ICMPTimeExceeded, &cb.ICMPParamProblem, &cb.ICMPTimestamp,
		&cb.ICMPTimestampReply, &cb.ICMPInfoRequest, &cb.ICMPInfoReply,
		&cb.ARP, &cb.ARPRequest, &cb.ARPReply, &cb.RARPRequest, &cb.RARPReply,
		&cb.IPv6, &cb.SNMP, &cb.PPP, &cb.AppleTalk,
		&cb.Default,
	}
}

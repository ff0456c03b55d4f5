// Package decode turns raw link-layer frames into typed, protocol-classified
// records. The decoder chains per-layer header parsers from gopacket/layers
// and stops at the first protocol it has no structured decoder for; stopping
// is classification, not failure. Only a malformed mandatory header at the
// link or network layer is an error.
package decode

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// DecodeError reports a malformed or truncated mandatory header.
type DecodeError struct {
	Layer string // name of the layer whose header failed to parse
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s header: %v", e.Layer, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Frame is the decoded representation of one captured frame. A layer field
// is non-nil only when every layer above it decoded successfully and named
// it as the next protocol; decode stopping early leaves the deeper fields
// nil and the classification at the last decoded layer.
type Frame struct {
	// Class is the most specific classification the decode chain reached.
	Class Classification

	// Link is always present. When the capture medium is not Ethernet it is
	// synthesized: zeroed addresses wrapping the original bytes as payload,
	// so downstream logic has a single link-layer shape to reason about. The
	// true non-Ethernet link header is not preserved.
	Link            *layers.Ethernet
	LinkSynthesized bool

	// Network layer. At most one is set.
	IPv4 *layers.IPv4
	ARP  *layers.ARP

	// Transport or subprotocol layer, present only under IPv4. At most one
	// is set.
	TCP    *layers.TCP
	UDP    *layers.UDP
	ICMPv4 *layers.ICMPv4
	IGMP   *layers.IGMPv1or2
}

// Payload returns the undecoded remainder of the innermost decoded layer.
func (f *Frame) Payload() []byte {
	switch {
	case f.TCP != nil:
		return f.TCP.Payload
	case f.UDP != nil:
		return f.UDP.Payload
	case f.ICMPv4 != nil:
		return f.ICMPv4.Payload
	case f.IGMP != nil:
		return f.IGMP.Payload
	case f.IPv4 != nil:
		return f.IPv4.Payload
	case f.ARP != nil:
		return f.ARP.Payload
	case f.Link != nil:
		return f.Link.Payload
	}
	return nil
}

// Decode parses raw into a Frame. Decoding never blocks and never retries.
// It fails with *DecodeError when a link- or network-layer header is
// malformed or truncated; an unrecognized but well-formed protocol value is
// not an error and classifies as ClassOther at that layer.
func Decode(raw []byte, linkType layers.LinkType) (*Frame, error) {
	f := &Frame{Class: ClassOther}

	var next layers.EthernetType
	var payload []byte

	if linkType == layers.LinkTypeEthernet {
		eth := &layers.Ethernet{}
		if err := eth.DecodeFromBytes(raw, gopacket.NilDecodeFeedback); err != nil {
			return nil, &DecodeError{Layer: "ethernet", Err: err}
		}
		f.Link = eth
		next = eth.EthernetType
		payload = eth.Payload
	} else {
		f.Link = synthesizeLink(raw)
		f.LinkSynthesized = true
		next = f.Link.EthernetType
		payload = raw
	}

	switch next {
	case layers.EthernetTypeIPv4:
		ip := &layers.IPv4{}
		if err := ip.DecodeFromBytes(payload, gopacket.NilDecodeFeedback); err != nil {
			return nil, &DecodeError{Layer: "ipv4", Err: err}
		}
		f.IPv4 = ip
		f.Class = ClassIPv4
		decodeTransport(f, ip)
	case layers.EthernetTypeARP, ethernetTypeRARP:
		arp := &layers.ARP{}
		if err := arp.DecodeFromBytes(payload, gopacket.NilDecodeFeedback); err != nil {
			return nil, &DecodeError{Layer: "arp", Err: err}
		}
		f.ARP = arp
		f.Class = ClassARP
		if sub, ok := arpSubtypes[arp.Operation]; ok {
			f.Class = sub
		}
	case layers.EthernetTypeIPv6:
		f.Class = ClassIPv6
	case ethernetTypeSNMP:
		f.Class = ClassSNMP
	case layers.EthernetTypePPP:
		f.Class = ClassPPP
	case ethernetTypeAppleTalk:
		f.Class = ClassAppleTalk
	default:
		f.Class = ClassOther
	}

	return f, nil
}

// decodeTransport refines an IPv4 frame by its protocol field. A transport
// header that fails to parse, or a protocol with no decoder, leaves the
// frame at the generic IPv4 classification.
func decodeTransport(f *Frame, ip *layers.IPv4) {
	switch ip.Protocol {
	case layers.IPProtocolTCP:
		tcp := &layers.TCP{}
		if err := tcp.DecodeFromBytes(ip.Payload, gopacket.NilDecodeFeedback); err != nil {
			return
		}
		f.TCP = tcp
		f.Class = ClassTCP
	case layers.IPProtocolUDP:
		udp := &layers.UDP{}
		if err := udp.DecodeFromBytes(ip.Payload, gopacket.NilDecodeFeedback); err != nil {
			return
		}
		f.UDP = udp
		f.Class = ClassUDP
	case layers.IPProtocolICMPv4:
		icmp := &layers.ICMPv4{}
		if err := icmp.DecodeFromBytes(ip.Payload, gopacket.NilDecodeFeedback); err != nil {
			return
		}
		f.ICMPv4 = icmp
		f.Class = ClassICMP
		if sub, ok := icmpSubtypes[icmp.TypeCode.Type()]; ok {
			f.Class = sub
		}
	case layers.IPProtocolIGMP:
		igmp := &layers.IGMPv1or2{}
		if err := igmp.DecodeFromBytes(ip.Payload, gopacket.NilDecodeFeedback); err != nil {
			return
		}
		f.IGMP = igmp
		f.Class = ClassIGMP
	}
}

// synthesizeLink wraps a non-Ethernet frame in an Ethernet-shaped link node.
// The next protocol is inferred from the leading IP version nibble; anything
// else stays unclassified.
func synthesizeLink(raw []byte) *layers.Ethernet {
	eth := &layers.Ethernet{
		SrcMAC: make([]byte, 6),
		DstMAC: make([]byte, 6),
	}
	eth.Payload = raw
	if len(raw) > 0 {
		switch raw[0] >> 4 {
		case 4:
			eth.EthernetType = layers.EthernetTypeIPv4
		case 6:
			eth.EthernetType = layers.EthernetTypeIPv6
		}
	}
	return eth
}

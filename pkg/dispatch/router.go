package dispatch

import (
	"github.com/endorses/pawcap/pkg/decode"
	"github.com/google/gopacket"
)

// chain returns the priority-ordered classification keys applicable to f,
// most specific first. The generic key of a layer always follows its
// subtype refinements, and generic IPv4 trails every transport key, so a
// generic-IPv4 handler sees exactly the frames whose transport has no
// dedicated handler, including frames with no transport layer at all.
func chain(f *decode.Frame) []decode.Classification {
	switch {
	case f == nil:
		return nil
	case f.TCP != nil:
		return []decode.Classification{decode.ClassTCP, decode.ClassIPv4}
	case f.UDP != nil:
		return []decode.Classification{decode.ClassUDP, decode.ClassIPv4}
	case f.ICMPv4 != nil:
		if f.Class != decode.ClassICMP {
			return []decode.Classification{f.Class, decode.ClassICMP, decode.ClassIPv4}
		}
		return []decode.Classification{decode.ClassICMP, decode.ClassIPv4}
	case f.IGMP != nil:
		return []decode.Classification{decode.ClassIGMP, decode.ClassIPv4}
	case f.IPv4 != nil:
		return []decode.Classification{decode.ClassIPv4}
	case f.ARP != nil:
		if f.Class != decode.ClassARP {
			return []decode.Classification{f.Class, decode.ClassARP}
		}
		return []decode.Classification{decode.ClassARP}
	case f.Class == decode.ClassIPv6, f.Class == decode.ClassSNMP,
		f.Class == decode.ClassPPP, f.Class == decode.ClassAppleTalk:
		return []decode.Classification{f.Class}
	}
	return nil
}

// Dispatch walks f's priority chain and invokes the first registered
// handler, falling back to the default handler when no key in the chain has
// one. At most one handler runs. The return value reports whether a
// non-default handler ran.
func Dispatch(r *Registry, s Session, f *decode.Frame, ci gopacket.CaptureInfo) bool {
	for _, key := range chain(f) {
		if h, ok := r.Resolve(key); ok {
			h(s, f, ci)
			return true
		}
	}
	if h, ok := r.Resolve(decode.ClassDefault); ok {
		h(s, f, ci)
	}
	return false
}

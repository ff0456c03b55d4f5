package pcaptypes

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// replaySource reads frames from a previously recorded capture file.
// Engine-side statistics are not available from savefiles, so it does not
// implement StatsProvider and the session counts frames itself.
type replaySource struct {
	path   string
	handle *pcap.Handle
}

// OpenReplay opens a recorded capture file for reading.
func OpenReplay(path string) (PacketSource, error) {
	handle, err := pcap.OpenOffline(path)
	if err != nil {
		return nil, err
	}
	return &replaySource{path: path, handle: handle}, nil
}

func (s *replaySource) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	return s.handle.ReadPacketData()
}

func (s *replaySource) LinkType() layers.LinkType {
	return s.handle.LinkType()
}

func (s *replaySource) SetBPFFilter(filter string) error {
	return s.handle.SetBPFFilter(filter)
}

func (s *replaySource) Close() {
	s.handle.Close()
}

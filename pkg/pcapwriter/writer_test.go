package pcapwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pcap")
	w, err := New(path, 1024, layers.LinkTypeEthernet)
	require.NoError(t, err)

	frames := [][]byte{
		{0xde, 0xad, 0xbe, 0xef},
		{0x01, 0x02, 0x03},
	}
	for _, data := range frames {
		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(data),
			Length:        len(data),
		}
		require.NoError(t, w.WritePacket(ci, data))
	}

	packets, bytes := w.Stats()
	assert.Equal(t, int64(2), packets)
	assert.Equal(t, int64(7), bytes)
	assert.Equal(t, path, w.FilePath())
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	require.NoError(t, err)
	assert.Equal(t, layers.LinkTypeEthernet, r.LinkType())

	for _, want := range frames {
		data, ci, err := r.ReadPacketData()
		require.NoError(t, err)
		assert.Equal(t, want, data)
		assert.Equal(t, len(want), ci.CaptureLength)
	}
}

func TestWriterEmptyPath(t *testing.T) {
	_, err := New("", 1024, layers.LinkTypeEthernet)
	assert.Error(t, err)
}

func TestWriterClosedRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.pcap")
	w, err := New(path, 1024, layers.LinkTypeEthernet)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Closing twice is not an error")

	err = w.WritePacket(gopacket.CaptureInfo{CaptureLength: 1, Length: 1}, []byte{0x00})
	assert.Error(t, err)
}

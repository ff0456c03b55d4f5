// Package pcapwriter writes captured frames to a pcap file. It pairs with a
// session's raw callback: every frame the loop reads goes to the file
// unmodified, so a capture can be replayed later.
package pcapwriter

import (
	"fmt"
	"os"

	"github.com/endorses/pawcap/internal/pkg/logger"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// Writer writes frames to a pcap file. It is not safe for concurrent use;
// the batch loop it serves is single-threaded anyway.
type Writer struct {
	filePath     string
	file         *os.File
	writer       *pcapgo.Writer
	snapLen      uint32
	linkType     layers.LinkType
	packetCount  int64
	bytesWritten int64
	closed       bool
}

// New creates a pcap file at path and writes its header. snapLen and
// linkType must match the session producing the frames.
func New(path string, snapLen int, linkType layers.LinkType) (*Writer, error) {
	if path == "" {
		return nil, fmt.Errorf("pcapwriter: file path cannot be empty")
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("pcapwriter: create %s: %w", path, err)
	}

	w := &Writer{
		filePath: path,
		file:     file,
		writer:   pcapgo.NewWriter(file),
		snapLen:  uint32(snapLen),
		linkType: linkType,
	}
	if err := w.writer.WriteFileHeader(w.snapLen, linkType); err != nil {
		file.Close()
		return nil, fmt.Errorf("pcapwriter: write header: %w", err)
	}

	logger.Debug("Created pcap writer", "file", path, "snaplen", snapLen, "link_type", linkType)
	return w, nil
}

// WritePacket appends one frame and its capture metadata to the file.
func (w *Writer) WritePacket(ci gopacket.CaptureInfo, data []byte) error {
	if w.closed {
		return fmt.Errorf("pcapwriter: writer is closed")
	}
	if err := w.writer.WritePacket(ci, data); err != nil {
		return fmt.Errorf("pcapwriter: write packet: %w", err)
	}
	w.packetCount++
	w.bytesWritten += int64(len(data))
	return nil
}

// Close flushes and closes the file. Closing twice is not an error.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.file.Sync(); err != nil {
		logger.Warn("Failed to sync pcap file", "error", err, "file", w.filePath)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("pcapwriter: close %s: %w", w.filePath, err)
	}

	logger.Info("Closed pcap writer",
		"file", w.filePath,
		"packets", w.packetCount,
		"bytes", w.bytesWritten)
	return nil
}

// Stats returns the packet and byte counts written so far.
func (w *Writer) Stats() (packetCount, bytesWritten int64) {
	return w.packetCount, w.bytesWritten
}

// FilePath returns the file path being written to.
func (w *Writer) FilePath() string {
	return w.filePath
}

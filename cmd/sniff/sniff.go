// Package sniff implements the pawcap sniff command: capture from a device
// or replay file, classify each frame, and print one line per frame through
// the dispatch callbacks.
package sniff

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/endorses/pawcap/internal/pkg/logger"
	"github.com/endorses/pawcap/internal/pkg/signals"
	"github.com/endorses/pawcap/pkg/capture"
	"github.com/endorses/pawcap/pkg/dispatch"
	"github.com/endorses/pawcap/pkg/pcapwriter"
	"github.com/google/gopacket"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var SniffCmd = &cobra.Command{
	Use:   "sniff",
	Short: "Capture and classify packets",
	Long: `Capture packets from a device or replay file, classify each frame,
and print one line per frame. With --write-file the session runs in raw
mode and frames are dumped to a pcap file instead of being classified.`,
	RunE: sniff,
}

var (
	device         string
	readFile       string
	filter         string
	promiscuous    bool
	packetsPerLoop int
	bytesToCapture int
	timeoutMs      int
	writeFile      string
	protocols      string
)

func init() {
	SniffCmd.Flags().StringVarP(&device, "interface", "i", "", "interface to capture from (default: first suitable device)")
	SniffCmd.Flags().StringVarP(&readFile, "read-file", "r", "", "read from a recorded capture file")
	SniffCmd.Flags().StringVarP(&filter, "filter", "f", "", "bpf filter to apply")
	SniffCmd.Flags().BoolVarP(&promiscuous, "promiscuous", "p", false, "use promiscuous mode")
	SniffCmd.Flags().IntVarP(&packetsPerLoop, "packets-per-loop", "b", 0, "frames per batch (default 32)")
	SniffCmd.Flags().IntVarP(&bytesToCapture, "bytes-to-capture", "s", 0, "snap length in bytes (default 1024)")
	SniffCmd.Flags().IntVarP(&timeoutMs, "timeout-ms", "t", 0, "read timeout in milliseconds, 0 blocks")
	SniffCmd.Flags().StringVarP(&writeFile, "write-file", "w", "", "dump raw frames to a pcap file instead of classifying")
	SniffCmd.Flags().StringVar(&protocols, "proto", "", "comma separated classification keys to print (default: all)")
}

func sniff(cmd *cobra.Command, args []string) error {
	cfg := capture.Config{
		Device:         device,
		File:           readFile,
		Filter:         filter,
		Promiscuous:    promiscuous,
		PacketsPerLoop: packetsPerLoop,
		BytesToCapture: bytesToCapture,
		TimeoutMs:      timeoutMs,
		SnapLenFloor:   viper.GetInt("snaplen_floor"),
		BufferSize:     viper.GetInt("pcap_buffer_size"),
	}

	var dumped int
	var writer *pcapwriter.Writer
	if writeFile != "" {
		cfg.Raw = func(s dispatch.Session, data []byte, ci gopacket.CaptureInfo) {
			if err := writer.WritePacket(ci, data); err != nil {
				logger.Warn("Failed to write frame", "error", err)
			}
			dumped++
		}
	} else if err := populateCallbacks(&cfg.Callbacks, protocols); err != nil {
		return err
	}

	sess, err := capture.NewSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	if writeFile != "" {
		writer, err = pcapwriter.New(writeFile, bytesToCapture, sess.LinkType())
		if err != nil {
			return err
		}
		defer writer.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleanup := signals.SetupHandler(ctx, cancel)
	defer cleanup()

	for ctx.Err() == nil {
		if writeFile != "" {
			before := dumped
			if err := sess.ProcessBatchRaw(); err != nil {
				return err
			}
			if dumped == before && idleMeansDone() {
				break
			}
			continue
		}

		n, err := sess.ProcessBatch()
		if err != nil {
			return err
		}
		if n == 0 && idleMeansDone() {
			break
		}
	}

	if stats, err := sess.Stats(); err == nil {
		fmt.Fprintf(os.Stderr, "%d frames received, %d dropped by engine, %d dropped by interface\n",
			stats.Received, stats.Dropped, stats.IfDropped)
	}
	return nil
}

// idleMeansDone reports whether an empty batch ends the run. Reading a
// replay file it always does; on a live device only a blocking read (zero
// timeout) returns empty at end of source.
func idleMeansDone() bool {
	return readFile != "" || timeoutMs == 0
}

func populateCallbacks(cb *dispatch.Callbacks, protos string) error {
	if protos == "" {
		for _, slot := range allSlots(cb) {
			*slot = printFrame
		}
		return nil
	}
	for _, key := range strings.Split(protos, ",") {
		key = strings.TrimSpace(key)
		slot := callbackSlot(cb, key)
		if slot == nil {
			return fmt.Errorf("unknown classification key %q", key)
		}
		*slot = printFrame
	}
	cb.Default = printFrame
	return nil
}

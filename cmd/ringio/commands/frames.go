package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/ringio/pkg/ringio"
)

var (
	flagFramesIn    string
	flagFramesDelim string
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Decode framed messages from a byte stream",
	Long: `Frames reads stdin (or --in) as a sequence of frames and prints
one frame per line.

The default wire format is a 2-byte decimal length header followed by
that many payload bytes. With --delim, the stream is instead split at
the given delimiter byte using the buffered delimiter scan.`,
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().StringVar(&flagFramesIn, "in", "", "input file (default stdin)")
	framesCmd.Flags().StringVar(&flagFramesDelim, "delim", "", "split at this single-byte delimiter instead of length headers")
	rootCmd.AddCommand(framesCmd)
}

func runFrames(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if flagFramesIn != "" {
		f, err := os.Open(flagFramesIn)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var calls int
	src := countSource(ringio.ReaderSource(in), &calls)
	r := ringio.NewReader(cfg.Capacity)

	count := 0
	if flagFramesDelim != "" {
		if len(flagFramesDelim) != 1 {
			return fmt.Errorf("--delim wants a single byte, got %q", flagFramesDelim)
		}
		delim := flagFramesDelim[0]
		for {
			frame, found := r.ReadUntil(src, delim)
			if len(frame) == 0 {
				break
			}
			if found {
				frame = frame[:len(frame)-1] // strip the delimiter
			}
			fmt.Printf("%s\n", frame)
			count++
			if !found {
				break
			}
		}
	} else {
		hdr := make([]byte, 2)
		body := make([]byte, 99) // max payload a 2-digit header can announce
		for {
			if r.Read(hdr, src) < 2 {
				break
			}
			msgLen, err := strconv.Atoi(string(hdr))
			if err != nil {
				return fmt.Errorf("bad frame header %q", hdr)
			}
			n := r.Read(body[:msgLen], src)
			fmt.Printf("%s\n", body[:n])
			count++
			if n < msgLen {
				break // source exhausted mid-frame
			}
		}
	}

	slog.Info("frames done", "frames", count, "read_calls", calls,
		"capacity", formatBytes(cfg.Capacity))
	return nil
}

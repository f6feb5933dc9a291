package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/haivivi/ringio/pkg/ringio"
	"github.com/haivivi/ringio/pkg/wsio"
)

var wsCmd = &cobra.Command{
	Use:   "ws <url>",
	Short: "Stream a websocket's binary messages to stdout",
	Long: `Ws dials a websocket URL and pumps the payload byte stream to
stdout through a buffered reader, until the peer closes.`,
	Args: cobra.ExactArgs(1),
	RunE: runWS,
}

func init() {
	rootCmd.AddCommand(wsCmd)
}

func runWS(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.Dial(args[0], nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", args[0], err)
	}
	defer conn.Close()
	slog.Debug("connected", "url", args[0])

	var calls int
	src := countSource(wsio.NewSource(conn), &calls)
	r := ringio.NewReader(cfg.Capacity)
	w := ringio.NewWriter(cfg.Capacity, ringio.WriterSink(os.Stdout))

	total := 0
	buf := make([]byte, cfg.Capacity)
	for {
		n := r.Read(buf, src)
		if n == 0 {
			break
		}
		w.Write(buf[:n])
		total += n
		if n < len(buf) {
			break
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	slog.Info("stream closed", "bytes", formatBytes(total), "read_calls", calls)
	return nil
}

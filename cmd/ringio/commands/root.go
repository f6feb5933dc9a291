package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags, applied over the config file.
	flagConfig  string
	flagCap     int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ringio",
	Short: "Buffered byte-stream plumbing",
	Long: `ringio demonstrates the buffered channel types from
github.com/haivivi/ringio/pkg/ringio: streams are pulled through a
fixed-capacity ring store so that many small logical reads and writes
collapse into few physical I/O calls.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().IntVar(&flagCap, "cap", 0, "ring capacity in bytes (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

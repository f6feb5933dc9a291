package commands

import "fmt"

// formatBytes renders a byte count in human-readable form.
func formatBytes(n int) string {
	const (
		kb = 1 << 10
		mb = kb << 10
		gb = mb << 10
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

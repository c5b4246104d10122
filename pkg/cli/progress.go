package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ProgressReporter reports progress for long-running byte transfers.
type ProgressReporter interface {
	Start(total int64)
	Update(current int64)
	Finish()
	Error(err error)
}

// ByteProgress implements a terminal progress bar for downloads, rendering
// transferred bytes and throughput.
type ByteProgress struct {
	mu      sync.Mutex
	label   string
	total   int64
	current int64
	started time.Time
	writer  io.Writer
}

// NewByteProgress creates a progress reporter labeled with the artifact name
// that writes to w. If w is nil, it defaults to os.Stderr so progress never
// mixes with command output on stdout.
func NewByteProgress(label string, w io.Writer) *ByteProgress {
	if w == nil {
		w = os.Stderr
	}
	return &ByteProgress{
		label:  label,
		writer: w,
	}
}

// Start initializes the reporter with the total transfer size in bytes.
// A zero total renders counts without a percentage bar.
func (p *ByteProgress) Start(total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.started = time.Now()
	p.render()
}

// Update sets the number of bytes transferred so far.
func (p *ByteProgress) Update(current int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = current
	p.render()
}

// Finish marks the transfer as complete.
func (p *ByteProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total > 0 {
		p.current = p.total
	}
	p.render()
	fmt.Fprintln(p.writer)
}

// Error reports a failed transfer.
func (p *ByteProgress) Error(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.writer, "\n✗ %s failed: %v\n", p.label, err)
}

func (p *ByteProgress) render() {
	elapsed := time.Since(p.started).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(p.current) / elapsed / (1 << 20)
	}

	if p.total <= 0 {
		fmt.Fprintf(p.writer, "\r%s: %s (%.1f MB/s)", p.label, formatBytes(p.current), rate)
		return
	}

	percent := float64(p.current) / float64(p.total) * 100
	barWidth := 40
	filled := int(float64(barWidth) * percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Fprintf(p.writer, "\r%s: [%s] %.1f%% (%s/%s) %.1f MB/s",
		p.label, bar, percent, formatBytes(p.current), formatBytes(p.total), rate)
}

// formatBytes renders a byte count in human-readable units.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// NopProgress discards all progress events. Used when output is not a
// terminal or in tests.
type NopProgress struct{}

func (NopProgress) Start(int64)  {}
func (NopProgress) Update(int64) {}
func (NopProgress) Finish()      {}
func (NopProgress) Error(error)  {}

package simulate

import (
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"

	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

// Progress tracks completed/retried draws with atomic counters, sampled
// by Run at a rate-limited cadence.
type Progress struct {
	completed atomic.Int64
	retries   atomic.Int64
	total     int64
}

func NewProgress(total int) *Progress { return &Progress{total: int64(total)} }

func (p *Progress) Completed() { p.completed.Add(1) }
func (p *Progress) Retried()   { p.retries.Add(1) }

// Run samples p every 100ms until done closes, printing a bar when
// stderr is a terminal and a plain log line otherwise — redirected
// output (CI logs, files) shouldn't fill up with carriage-return noise.
func (p *Progress) Run(done <-chan struct{}) {
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	interactive := isatty.IsTerminal(os.Stderr.Fd())
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			p.report(interactive)
			return
		case <-ticker.C:
			if limiter.Allow() {
				p.report(interactive)
			}
		}
	}
}

func (p *Progress) report(interactive bool) {
	completed := p.completed.Load()
	retries := p.retries.Load()
	if !interactive {
		telemetry.Infof("progress: %d/%d draws (%d retries)", completed, p.total, retries)
		return
	}
	const width = 30
	filled := 0
	if p.total > 0 {
		filled = int(width * completed / p.total)
		if filled > width {
			filled = width
		}
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	telemetry.Plainf("[%s] %d/%d draws (%d retries)", bar, completed, p.total, retries)
}

package lumen

import (
	"fmt"
	"os"
	"time"
)

// renderStats holds per-frame timing and triangle metrics.
// Only populated when the renderer's debug mode is on.
type renderStats struct {
	projectTime time.Duration
	sortTime    time.Duration
	submitTime  time.Duration
	drawn       int
	culled      int
}

// debugLog prints timing and triangle stats to stderr.
func (r *Renderer) debugLog(stats renderStats) {
	if !r.debug {
		return
	}
	total := stats.projectTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[lumen] project: %v | sort: %v | submit: %v | total: %v\n",
		stats.projectTime, stats.sortTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[lumen] triangles drawn: %d | culled: %d\n",
		stats.drawn, stats.culled)
}

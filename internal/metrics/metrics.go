// Package metrics provides lightweight, lock-free counters for tracking
// what an aster run did to its input.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for one run.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	linesRead    atomic.Int64
	linesWritten atomic.Int64
	linesSkipped atomic.Int64
	bytesIn      atomic.Int64
	bytesOut     atomic.Int64

	mu          sync.RWMutex
	startTime   time.Time
	lastSkip    time.Time
	lastSkipMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Line metrics ─────────────────────────────────────────────────────

// LineRead records one input line of n bytes, terminator included.
func (c *Collector) LineRead(n int) {
	if c == nil {
		return
	}
	c.linesRead.Add(1)
	c.bytesIn.Add(int64(n))
}

// LineWritten records one output line of n bytes, terminator included.
func (c *Collector) LineWritten(n int) {
	if c == nil {
		return
	}
	c.linesWritten.Add(1)
	c.bytesOut.Add(int64(n))
}

// LineSkipped records a dropped input line and the reason.
func (c *Collector) LineSkipped(reason string) {
	if c == nil {
		return
	}
	c.linesSkipped.Add(1)
	c.mu.Lock()
	c.lastSkip = time.Now()
	c.lastSkipMsg = reason
	c.mu.Unlock()
}

// LinesRead returns the number of input lines seen.
func (c *Collector) LinesRead() int64 {
	if c == nil {
		return 0
	}
	return c.linesRead.Load()
}

// LinesWritten returns the number of output lines produced.
func (c *Collector) LinesWritten() int64 {
	if c == nil {
		return 0
	}
	return c.linesWritten.Load()
}

// LinesSkipped returns the number of dropped input lines.
func (c *Collector) LinesSkipped() int64 {
	if c == nil {
		return 0
	}
	return c.linesSkipped.Load()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// TotalBytesIn returns total bytes read.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes written.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime         string `json:"uptime"`
	LinesRead      int64  `json:"lines_read"`
	LinesWritten   int64  `json:"lines_written"`
	LinesSkipped   int64  `json:"lines_skipped"`
	BytesIn        int64  `json:"bytes_in"`
	BytesOut       int64  `json:"bytes_out"`
	LastSkip       string `json:"last_skip,omitempty"`
	LastSkipReason string `json:"last_skip_reason,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:       time.Since(c.startTime).Truncate(time.Millisecond).String(),
		LinesRead:    c.linesRead.Load(),
		LinesWritten: c.linesWritten.Load(),
		LinesSkipped: c.linesSkipped.Load(),
		BytesIn:      c.bytesIn.Load(),
		BytesOut:     c.bytesOut.Load(),
	}
	if !c.lastSkip.IsZero() {
		s.LastSkip = c.lastSkip.Format(time.RFC3339)
		s.LastSkipReason = c.lastSkipMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}

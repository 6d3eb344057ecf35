package metrics

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestCollector_Lines(t *testing.T) {
	c := New()

	c.LineRead(4)
	c.LineRead(6)
	c.LineWritten(4)
	c.LineSkipped("line 2: line is not valid UTF-8")

	if c.LinesRead() != 2 {
		t.Errorf("read = %d, want 2", c.LinesRead())
	}
	if c.LinesWritten() != 1 {
		t.Errorf("written = %d, want 1", c.LinesWritten())
	}
	if c.LinesSkipped() != 1 {
		t.Errorf("skipped = %d, want 1", c.LinesSkipped())
	}
	if c.TotalBytesIn() != 10 {
		t.Errorf("bytes in = %d, want 10", c.TotalBytesIn())
	}
	if c.TotalBytesOut() != 4 {
		t.Errorf("bytes out = %d, want 4", c.TotalBytesOut())
	}
}

func TestCollector_Snapshot(t *testing.T) {
	c := New()
	c.LineRead(3)
	c.LineWritten(5)
	c.LineSkipped("bad line")

	s := c.Snapshot()
	if s.LinesRead != 1 || s.LinesWritten != 1 || s.LinesSkipped != 1 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.BytesIn != 3 || s.BytesOut != 5 {
		t.Errorf("unexpected byte counts: %+v", s)
	}
	if s.LastSkip == "" || s.LastSkipReason != "bad line" {
		t.Errorf("last skip not recorded: %+v", s)
	}
	if s.Uptime == "" {
		t.Error("uptime should be set")
	}
}

func TestCollector_SnapshotNoSkips(t *testing.T) {
	s := New().Snapshot()
	if s.LastSkip != "" || s.LastSkipReason != "" {
		t.Errorf("skip fields should be empty: %+v", s)
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.LineRead(12)

	var s Snapshot
	if err := json.Unmarshal([]byte(c.JSON()), &s); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if s.LinesRead != 1 || s.BytesIn != 12 {
		t.Errorf("decoded snapshot = %+v", s)
	}
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	c.LineRead(1)
	c.LineWritten(1)
	c.LineSkipped("x")
	if c.LinesRead() != 0 || c.LinesWritten() != 0 || c.LinesSkipped() != 0 {
		t.Error("nil collector should report zero")
	}
	if c.TotalBytesIn() != 0 || c.TotalBytesOut() != 0 {
		t.Error("nil collector should report zero bytes")
	}
	if s := c.Snapshot(); s != (Snapshot{}) {
		t.Errorf("nil snapshot = %+v", s)
	}
}

func TestCollector_Concurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.LineRead(1)
				c.LineSkipped("x")
			}
		}()
	}
	wg.Wait()
	if c.LinesRead() != 800 || c.LinesSkipped() != 800 {
		t.Errorf("read = %d skipped = %d, want 800 each", c.LinesRead(), c.LinesSkipped())
	}
}

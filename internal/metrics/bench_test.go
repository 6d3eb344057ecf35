package metrics

import "testing"

// BenchmarkCollector_LineRead measures the per-line recording overhead.
func BenchmarkCollector_LineRead(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.LineRead(80)
	}
}

func BenchmarkCollector_Snapshot(b *testing.B) {
	c := New()
	c.LineRead(80)
	c.LineWritten(120)
	c.LineSkipped("test")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Snapshot()
	}
}

// BenchmarkNilCollector verifies nil-safe no-ops have zero overhead.
func BenchmarkNilCollector(b *testing.B) {
	var c *Collector
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.LineRead(80)
		c.LineWritten(120)
		c.LineSkipped("test")
	}
}

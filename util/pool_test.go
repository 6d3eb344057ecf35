package util

import "testing"

func TestLinePool_RoundTrip(t *testing.T) {
	buf := GetLine()
	if buf == nil {
		t.Fatal("GetLine returned nil")
	}
	if len(*buf) != 0 {
		t.Errorf("buffer len = %d, want 0", len(*buf))
	}

	*buf = append(*buf, "dirty"...)
	PutLine(buf)

	buf2 := GetLine()
	if len(*buf2) != 0 {
		t.Errorf("reused buffer len = %d, want 0", len(*buf2))
	}
	PutLine(buf2)
}

func TestPutLine_Nil(t *testing.T) {
	// Should not panic.
	PutLine(nil)
}

func TestPutLine_Oversized(t *testing.T) {
	big := make([]byte, 0, maxPooledLine+1)
	// Dropped silently; nothing to assert beyond not panicking.
	PutLine(&big)
}

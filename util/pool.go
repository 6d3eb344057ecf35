package util

import "sync"

// LinePool provides reusable line buffers for the read/transform/write
// loop.  Buffers that grew past maxPooledLine are dropped instead of
// being returned, so one huge line does not pin memory for the rest of
// the run.
var LinePool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, defaultLineCap)
		return &buf
	},
}

const (
	defaultLineCap = 4 * 1024
	maxPooledLine  = 1 << 20
)

// GetLine retrieves an empty buffer from the pool.  Callers must return
// it with [PutLine] when finished.
func GetLine() *[]byte {
	buf := LinePool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// PutLine returns a buffer to the pool for reuse.
func PutLine(buf *[]byte) {
	if buf == nil || cap(*buf) > maxPooledLine {
		return
	}
	LinePool.Put(buf)
}

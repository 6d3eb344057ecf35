package util

import (
	"bufio"
	"errors"
	"io"
)

// ReadLine reads one line from r into buf[:0] and returns it without
// its "\n" or "\r\n" terminator, together with the number of raw bytes
// consumed.  A final line with no terminator is returned with a nil
// error; io.EOF is only returned once nothing is left.
func ReadLine(r *bufio.Reader, buf []byte) (line []byte, n int, err error) {
	line = buf[:0]
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)
		n += len(chunk)
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && n > 0 {
			return line, n, nil
		}
		return line, n, err
	}
	return trimEOL(line), n, nil
}

func trimEOL(line []byte) []byte {
	if k := len(line); k > 0 && line[k-1] == '\n' {
		line = line[:k-1]
		if k := len(line); k > 0 && line[k-1] == '\r' {
			line = line[:k-1]
		}
	}
	return line
}

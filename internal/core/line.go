package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"aster/internal/errors"
	"aster/internal/metrics"
	"aster/internal/prompt"
	"aster/util"
	"aster/vigenere"
)

// LineMode reads lines from Stdin, transforms each one with Cipher and
// writes it to Stdout followed by "\n".
//
// Output is flushed after every line, so line i of the output always
// belongs to line i of the input even when aster sits in the middle of
// an interactive pipe.
type LineMode struct {
	Cipher  *vigenere.Cipher
	Logger  *util.Logger
	Metrics *metrics.Collector // optional

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *LineMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *LineMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run processes lines until the input is exhausted.
//
// A line that is not valid UTF-8 is skipped and processing continues
// with the next one.  Failing to read or write the streams themselves
// ends the run with an error.
func (m *LineMode) Run(ctx context.Context) error {
	in := m.stdin()
	if f, ok := in.(*os.File); ok && prompt.IsInteractive(f) {
		m.Logger.Info("reading from terminal, end input with Ctrl-D")
	}

	r := bufio.NewReader(in)
	w := bufio.NewWriter(m.stdout())

	buf := util.GetLine()
	defer util.PutLine(buf)
	out := util.GetLine()
	defer util.PutLine(out)

	var read, skipped int
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, raw, err := util.ReadLine(r, *buf)
		*buf = line
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", n, err)
		}
		read++
		m.Metrics.LineRead(raw)

		*out, err = m.transform((*out)[:0], n, line)
		if errors.IsSkippable(err) {
			m.Logger.Verbose("skipping %v", err)
			m.Metrics.LineSkipped(err.Error())
			skipped++
			continue
		}
		if _, err := w.Write(*out); err != nil {
			return fmt.Errorf("write line %d: %w", n, err)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("write line %d: %w", n, err)
		}
		m.Metrics.LineWritten(len(*out))
		m.Logger.Debug("line %d: %d bytes in, %d bytes out", n, raw, len(*out))
	}

	m.Logger.Verbose("input exhausted after %d lines (%d skipped)", read, skipped)
	return nil
}

// transform appends the ciphered line n plus "\n" to dst.  A line that
// is not valid UTF-8 yields a *errors.LineError and dst unchanged.
func (m *LineMode) transform(dst []byte, n int, line []byte) ([]byte, error) {
	if !utf8.Valid(line) {
		return dst, errors.SkipLine(n, errors.ErrInvalidText)
	}
	dst = m.Cipher.AppendLine(dst, string(line))
	return append(dst, '\n'), nil
}

// Package prompt reads a cipher key from the controlling terminal.
//
// Standard input carries the text being transformed, so the key is read
// from a separately opened terminal device with echo turned off.
package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"aster/internal/errors"
)

// Terminal is the subset of *os.File the prompt needs.
type Terminal interface {
	io.Writer
	Fd() uintptr
}

// readPassword is swapped out in tests.
var readPassword = term.ReadPassword //nolint:gochecknoglobals

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadKey opens the terminal at path and reads a key from it.
func ReadKey(path string) (string, error) {
	tty, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrNoTerminal, err)
	}
	defer tty.Close()
	return ReadKeyFrom(tty)
}

// ReadKeyFrom prints a prompt to t and reads a key without echo.  A
// trailing carriage return is dropped; an empty answer is an error.
func ReadKeyFrom(t Terminal) (string, error) {
	fmt.Fprint(t, "Key: ")
	raw, err := readPassword(int(t.Fd()))
	fmt.Fprintln(t)
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	key := strings.TrimRight(string(raw), "\r")
	if key == "" {
		return "", errors.ErrEmptyPrompted
	}
	return key, nil
}

// Package errors provides domain-specific error types for aster.
//
// Only configuration problems are fatal.  Problems with individual
// input lines are reported as *LineError so the driver can skip the
// line and carry on.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrMissingKey    = errors.New("no key supplied")
	ErrNoTerminal    = errors.New("no controlling terminal")
	ErrInvalidText   = errors.New("line is not valid UTF-8")
	ErrEmptyPrompted = errors.New("empty key entered at prompt")
)

// ── Structured error types ───────────────────────────────────────────

// ConfigError represents an invalid or missing configuration value.
type ConfigError struct {
	Field   string      // flag name, without dashes
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel, if any
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: -%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LineError describes an input line that could not be transformed.
type LineError struct {
	Line int   // 1-based input line number
	Err  error // underlying cause
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// MissingKey returns the error reported when no key was given.
func MissingKey(message string) *ConfigError {
	return &ConfigError{
		Field:   "k",
		Message: message,
		Hint:    "pass the key with -k <key> or use --prompt-key",
		Err:     ErrMissingKey,
	}
}

// SkipLine wraps err as a *LineError for line n.
func SkipLine(n int, err error) *LineError {
	return &LineError{Line: n, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsSkippable reports whether err only affects a single input line.
func IsSkippable(err error) bool {
	var le *LineError
	return errors.As(err, &le)
}

// IsMissingKey reports whether err is the missing-key failure.
func IsMissingKey(err error) bool {
	return errors.Is(err, ErrMissingKey)
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Package config defines the runtime configuration for aster and the
// scanner that derives it from the argument list.
package config

import (
	"fmt"

	"aster/internal/errors"
	"aster/vigenere"
)

// Config holds everything a single aster run needs.  It is built once at
// startup and never modified afterwards.
type Config struct {
	// ── Cipher ───────────────────────────────────────────────────────
	Decrypt bool   // -d / -D
	Key     string // -k / -K <key>

	// ── Key entry ────────────────────────────────────────────────────
	PromptKey bool   // --prompt-key: read the key from the terminal
	TTYPath   string // terminal used by --prompt-key

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Stats   bool // --stats: dump metrics to stderr on exit
}

// Direction maps the decrypt flag onto the cipher direction.
func (c Config) Direction() vigenere.Direction {
	if c.Decrypt {
		return vigenere.Decrypt
	}
	return vigenere.Encrypt
}

// WithKey returns a copy of c using key.
func (c Config) WithKey(key string) Config {
	c.Key = key
	return c
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration can drive the cipher.
func (c Config) Validate() error {
	if c.Key == "" {
		return errors.MissingKey(MissingKeyMessage)
	}
	if c.Verbose < 0 {
		return &errors.ConfigError{
			Field:   "verbose",
			Value:   c.Verbose,
			Message: "must not be negative",
		}
	}
	if c.PromptKey && c.TTYPath == "" {
		return &errors.ConfigError{
			Field:   "prompt-key",
			Message: "no terminal device configured",
			Hint:    fmt.Sprintf("the default is %s", DefaultTTYPath),
		}
	}
	return nil
}

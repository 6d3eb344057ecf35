package config

// ── Default values ───────────────────────────────────────────────────

const (
	// MissingKeyMessage is printed to stderr when no key was supplied.
	MissingKeyMessage = "Aster requires a key to perform en(de)crypt actions on a plaintext"

	// DefaultTTYPath is the device --prompt-key reads the key from.
	// Standard input carries the text, so the prompt cannot use it.
	DefaultTTYPath = "/dev/tty"
)

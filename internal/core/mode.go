// Package core is the orchestration layer.  It turns a validated Config
// into a runnable Mode that pumps standard input through the cipher.
//
// Architecture layers (bottom → top):
//
//	vigenere  →  util (line I/O)  →  core  →  cmd (CLI)
package core

import "context"

// Mode is one complete run of aster, from the first line read to the
// last line written.
type Mode interface {
	Run(ctx context.Context) error
}

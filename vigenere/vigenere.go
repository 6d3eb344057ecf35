// Package vigenere implements the byte-range polyalphabetic cipher used
// by aster.
//
// Every character of a line is truncated to its low byte, shifted by
// the byte value of the matching key character, and emitted as the
// code point with the resulting value.  Output is therefore valid UTF-8
// and can be piped straight back in for decryption.
//
// The cipher is a classical one.  It offers no confidentiality against
// anyone who cares to look.
package vigenere

import (
	"unicode/utf8"
)

// Direction selects which shift is applied.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Cipher binds a key to a direction.  The zero value is not usable; a
// Cipher must be created with New.
type Cipher struct {
	key       []rune
	keyBytes  int
	direction Direction
}

// New returns a Cipher for key.  It panics if key is empty.
func New(key string, dir Direction) *Cipher {
	if key == "" {
		panic("vigenere: empty key")
	}
	return &Cipher{
		key:       []rune(key),
		keyBytes:  len(key),
		direction: dir,
	}
}

// Direction reports whether c encrypts or decrypts.
func (c *Cipher) Direction() Direction { return c.direction }

// Line returns the transformed line without a terminator.
func (c *Cipher) Line(line string) string {
	return string(c.AppendLine(make([]byte, 0, len(line)), line))
}

// AppendLine appends the transformed line to dst and returns the
// extended slice.
//
// The key cursor starts at zero for every call.  It advances once per
// input character and wraps at the key's length in bytes, so for a key
// with multi-byte characters the cursor can point past the last key
// character; the input character at that position is dropped.
func (c *Cipher) AppendLine(dst []byte, line string) []byte {
	cursor := 0
	for _, r := range line {
		if cursor < len(c.key) {
			shift := byte(c.key[cursor])
			var out byte
			if c.direction == Decrypt {
				out = ShiftDown(byte(r), shift)
			} else {
				out = ShiftUp(byte(r), shift)
			}
			dst = utf8.AppendRune(dst, rune(out))
		}
		cursor = (cursor + 1) % c.keyBytes
	}
	return dst
}

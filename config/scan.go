package config

// scan.go - deriving the cipher settings from the raw argument list.
//
// The cipher flags are matched case-insensitively and are scanned
// before (and independently of) the long-option parser in cmd, so that
// "-D" and "-K" work and unknown tokens are simply ignored.

import "strings"

// Derive scans args (program name excluded) for -d and -k.
//
//   - "-d" in any case turns on decryption.
//   - "-k" in any case takes the following token as the key.  A "-k"
//     with nothing after it leaves the key unchanged, and a later "-k"
//     replaces an earlier one.
//   - The token consumed as a key is scanned like any other, so
//     "-k -d" sets the key to "-d" and also selects decryption.
//
// Earlier releases located the key at argv[i+2], i being the index
// among the arguments after the program name.  That is the token right
// after "-k", which is what Derive uses.
func Derive(args []string) Config {
	cfg := Config{TTYPath: DefaultTTYPath}
	for i, tok := range args {
		switch {
		case strings.EqualFold(tok, "-d"):
			cfg.Decrypt = true
		case strings.EqualFold(tok, "-k"):
			if i+1 < len(args) {
				cfg.Key = args[i+1]
			}
		}
	}
	return cfg
}

// StripCipherFlags returns args without the tokens Derive consumes, so
// the remainder can be handed to a conventional flag parser.  A token is
// consumed when it is -d or -k, or when it follows a -k; the marks are
// taken over every token, exactly as Derive scans them, so chained
// "-k -k --help" drops "--help" as well.
func StripCipherFlags(args []string) []string {
	consumed := make([]bool, len(args))
	for i, tok := range args {
		switch {
		case strings.EqualFold(tok, "-d"):
			consumed[i] = true
		case strings.EqualFold(tok, "-k"):
			consumed[i] = true
			if i+1 < len(args) {
				consumed[i+1] = true
			}
		}
	}

	out := make([]string, 0, len(args))
	for i, tok := range args {
		if !consumed[i] {
			out = append(out, tok)
		}
	}
	return out
}

// aster - a Vigenère cipher over the full byte range.
package main

import (
	"context"
	"os"

	"aster/cmd"
)

func main() {
	err := cmd.Execute(context.Background(), os.Args[1:])
	if code := cmd.Report(os.Stderr, err); code != 0 {
		os.Exit(code)
	}
}

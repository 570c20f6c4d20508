package config

import (
	"fmt"
	"os"
)

// Exitf prints a startup failure to stderr and terminates with status 1.
func Exitf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

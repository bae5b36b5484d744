// Command raise focuses a window that matches the given criteria, cycles
// through matching windows, or launches a command when none match.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

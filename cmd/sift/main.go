package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var findings *findingsError
		if !errors.As(err, &findings) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

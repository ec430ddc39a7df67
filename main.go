package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tres/cmd"
	"github.com/thenoetrevino/tres/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; anything else is printed here
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

package main

import (
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vaultpass/passgen-go/internal/cli"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts, err := cli.ParseFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.Interactive {
		hash := opts.Hash
		opts, err = cli.Prompt(stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		opts.Hash = hash
	}

	runner := cli.Runner{
		Generator: crypto.NewGenerator(rand.Reader),
		Hash:      crypto.HashPassword,
		Out:       stdout,
	}
	if err := runner.Run(opts); err != nil {
		if crypto.IsValidationError(err) || errors.Is(err, cli.ErrCountNotPositive) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
		}
		return 1
	}
	return 0
}

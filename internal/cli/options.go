// Package cli implements the passgen command: flag parsing, interactive
// prompting and the printed strength analysis.
package cli

import (
	"errors"
	"flag"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var ErrCountNotPositive = errors.New("number of passwords must be at least 1")

// Options holds everything the command needs to produce output.
type Options struct {
	Length       int
	Count        int
	Requirements crypto.Requirements
	Interactive  bool
	Hash         bool
}

// ParseFlags registers the passgen flags on fs and parses args. Both -flag
// and --flag spellings are accepted.
func ParseFlags(fs *flag.FlagSet, args []string) (Options, error) {
	var (
		opts                                 Options
		noLower, noUpper, noDigits, noSymbol bool
	)

	fs.IntVar(&opts.Length, "length", crypto.DefaultLength, "Password length")
	fs.IntVar(&opts.Length, "l", crypto.DefaultLength, "Password length (shorthand)")
	fs.IntVar(&opts.Count, "number", 1, "Number of passwords")
	fs.IntVar(&opts.Count, "n", 1, "Number of passwords (shorthand)")
	fs.BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	fs.BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	fs.BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	fs.BoolVar(&noSymbol, "no-symbols", false, "Exclude symbols")
	fs.BoolVar(&opts.Interactive, "interactive", false, "Use interactive mode")
	fs.BoolVar(&opts.Hash, "hash", false, "Also print the Argon2id hash of each password")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts.Requirements = crypto.Requirements{
		Lowercase: !noLower,
		Uppercase: !noUpper,
		Digits:    !noDigits,
		Symbols:   !noSymbol,
	}
	return opts, nil
}

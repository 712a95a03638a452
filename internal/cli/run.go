package cli

import (
	"fmt"
	"io"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Runner generates passwords and prints them with a strength analysis.
type Runner struct {
	Generator *crypto.Generator
	Hash      func(string) (string, error)
	Out       io.Writer
}

// Run executes opts. Errors are returned unprinted; callers decide how to
// report them.
func (r Runner) Run(opts Options) error {
	if opts.Count < 1 {
		return ErrCountNotPositive
	}

	passwords, err := r.Generator.GenerateMany(opts.Count, opts.Length, opts.Requirements)
	if err != nil {
		return err
	}

	if len(passwords) == 1 {
		return r.analyze(passwords[0], opts.Hash)
	}

	fmt.Fprintf(r.Out, "\nGenerated %d passwords:\n", len(passwords))
	for i, pw := range passwords {
		fmt.Fprintf(r.Out, "%2d. %s\n", i+1, pw)
		if opts.Hash {
			hash, err := r.Hash(pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.Out, "    Hash: %s\n", hash)
		}
	}

	// The first password stands in for the batch.
	return r.analyze(passwords[0], false)
}

func (r Runner) analyze(password string, withHash bool) error {
	WriteStrength(r.Out, password)
	if withHash {
		hash, err := r.Hash(password)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "Hash: %s\n", hash)
	}
	return nil
}

// WriteStrength prints the strength analysis block for password.
func WriteStrength(w io.Writer, password string) {
	report := crypto.Score(password)

	fmt.Fprintf(w, "\nPassword: %s\n", password)
	fmt.Fprintln(w, "Strength Analysis:")
	fmt.Fprintf(w, "Length: %d characters\n", report.Length)
	fmt.Fprintf(w, "Lowercase letters: %s\n", yesNo(report.HasLowercase))
	fmt.Fprintf(w, "Uppercase letters: %s\n", yesNo(report.HasUppercase))
	fmt.Fprintf(w, "Digits: %s\n", yesNo(report.HasDigit))
	fmt.Fprintf(w, "Symbols: %s\n", yesNo(report.HasSymbol))
	fmt.Fprintf(w, "Overall Rating: %s\n", report.Rating())
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

const minInteractiveLength = 4

var ErrInputClosed = errors.New("input closed before all answers were given")

// Prompt asks for length, categories and count on r, writing prompts to w.
// Invalid numbers are asked again.
func Prompt(r io.Reader, w io.Writer) (Options, error) {
	p := prompter{in: bufio.NewScanner(r), out: w}
	opts := Options{Interactive: true}

	fmt.Fprintln(w, "=== Password Generator ===")

	length, err := p.askInt("Enter password length (default 12): ", crypto.DefaultLength, minInteractiveLength,
		fmt.Sprintf("Password length must be at least %d characters.", minInteractiveLength))
	if err != nil {
		return Options{}, err
	}
	opts.Length = length

	fmt.Fprintln(w, "\nSelect character types to include:")
	questions := []struct {
		text string
		dst  *bool
	}{
		{"Include lowercase letters? (y/n, default y): ", &opts.Requirements.Lowercase},
		{"Include uppercase letters? (y/n, default y): ", &opts.Requirements.Uppercase},
		{"Include digits? (y/n, default y): ", &opts.Requirements.Digits},
		{"Include symbols? (y/n, default y): ", &opts.Requirements.Symbols},
	}
	for _, q := range questions {
		answer, err := p.ask(q.text)
		if err != nil {
			return Options{}, err
		}
		*q.dst = strings.ToLower(answer) != "n"
	}

	count, err := p.askInt("\nHow many passwords to generate? (default 1): ", 1, 1, "Please enter at least 1.")
	if err != nil {
		return Options{}, err
	}
	opts.Count = count

	return opts, nil
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p prompter) askInt(question string, fallback, least int, tooSmall string) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if n < least {
			fmt.Fprintln(p.out, tooSmall)
			continue
		}
		return n, nil
	}
}

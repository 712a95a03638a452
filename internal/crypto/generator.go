package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	DefaultLength = 12
	MaxLength     = 1 << 20
)

var (
	ErrLengthNotPositive  = errors.New("password length must be a positive integer")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length too short for required character types")
	ErrLengthTooLong      = errors.New("password length too long")
)

// Category is a named class of characters backed by a fixed character set.
type Category int

const (
	Lowercase Category = iota
	Uppercase
	Digits
	Symbols
)

// Categories lists every category in generation order.
var Categories = []Category{Lowercase, Uppercase, Digits, Symbols}

func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Charset returns the characters backing the category.
func (c Category) Charset() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	}
	return ""
}

// Requirements selects which categories must appear in a generated password.
type Requirements struct {
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// AllCategories enables every category.
func AllCategories() Requirements {
	return Requirements{Lowercase: true, Uppercase: true, Digits: true, Symbols: true}
}

// Resolve substitutes AllCategories when nothing is selected.
func (r Requirements) Resolve() Requirements {
	if !r.Lowercase && !r.Uppercase && !r.Digits && !r.Symbols {
		return AllCategories()
	}
	return r
}

// Enabled returns the selected categories in generation order.
func (r Requirements) Enabled() []Category {
	var out []Category
	for _, c := range Categories {
		if r.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether c is selected.
func (r Requirements) Has(c Category) bool {
	switch c {
	case Lowercase:
		return r.Lowercase
	case Uppercase:
		return r.Uppercase
	case Digits:
		return r.Digits
	case Symbols:
		return r.Symbols
	}
	return false
}

// IsValidationError reports whether err was caused by an invalid request
// rather than a failure of the random source.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthNotPositive) ||
		errors.Is(err, ErrNoCharacterTypes) ||
		errors.Is(err, ErrLengthInsufficient) ||
		errors.Is(err, ErrLengthTooLong)
}

// Generator draws passwords from a cryptographically secure source.
// It holds no mutable state and is safe for concurrent use when its
// reader is.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator(rand.Reader)

// Generate creates a password of the given length using crypto/rand.
func Generate(length int, req Requirements) (string, error) {
	return defaultGenerator.Generate(length, req)
}

// GenerateMany creates count independent passwords using crypto/rand.
func GenerateMany(count, length int, req Requirements) ([]string, error) {
	return defaultGenerator.GenerateMany(count, length, req)
}

// Generate creates a password of exactly length characters containing at
// least one character from every selected category.
func (g *Generator) Generate(length int, req Requirements) (string, error) {
	if length <= 0 {
		return "", ErrLengthNotPositive
	}
	if length > MaxLength {
		return "", fmt.Errorf("%w (maximum: %d)", ErrLengthTooLong, MaxLength)
	}

	// Build the character pool and collect required sets.
	var pool string
	var requiredSets []string
	for _, c := range req.Resolve().Enabled() {
		pool += c.Charset()
		requiredSets = append(requiredSets, c.Charset())
	}

	if pool == "" {
		return "", ErrNoCharacterTypes
	}
	if length < len(requiredSets) {
		return "", fmt.Errorf("%w (minimum: %d)", ErrLengthInsufficient, len(requiredSets))
	}

	result := make([]byte, length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < length; i++ {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateMany returns count passwords generated with the same parameters.
// The first failure aborts the batch.
func (g *Generator) GenerateMany(count, length int, req Requirements) ([]string, error) {
	if count < 0 {
		count = 0
	}
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.Generate(length, req)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func (g *Generator) randIndex(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	i, err := g.randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle is a Fisher-Yates permutation driven by the secure source.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

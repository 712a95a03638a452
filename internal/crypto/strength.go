package crypto

import (
	"strings"
	"unicode/utf8"
)

const (
	MinLength  = 8
	GoodLength = 12
)

// Rating is the qualitative verdict of a StrengthReport.
type Rating string

const (
	RatingWeak   Rating = "Weak"
	RatingGood   Rating = "Good"
	RatingStrong Rating = "Strong"
)

// StrengthReport lists which quality checks a password satisfies.
type StrengthReport struct {
	HasLowercase bool
	HasUppercase bool
	HasDigit     bool
	HasSymbol    bool
	MinLength    bool
	GoodLength   bool
	Length       int
}

// Score inspects password and reports the checks it passes.
func Score(password string) StrengthReport {
	n := utf8.RuneCountInString(password)
	return StrengthReport{
		HasLowercase: strings.ContainsAny(password, lowercaseChars),
		HasUppercase: strings.ContainsAny(password, uppercaseChars),
		HasDigit:     strings.ContainsAny(password, digitChars),
		HasSymbol:    strings.ContainsAny(password, symbolChars),
		MinLength:    n >= MinLength,
		GoodLength:   n >= GoodLength,
		Length:       n,
	}
}

// Passed returns the number of checks that hold.
func (r StrengthReport) Passed() int {
	n := 0
	for _, ok := range []bool{r.HasLowercase, r.HasUppercase, r.HasDigit, r.HasSymbol, r.MinLength, r.GoodLength} {
		if ok {
			n++
		}
	}
	return n
}

// Rating is Strong with six checks, Good with at least four, else Weak.
func (r StrengthReport) Rating() Rating {
	switch passed := r.Passed(); {
	case passed >= 6:
		return RatingStrong
	case passed >= 4:
		return RatingGood
	default:
		return RatingWeak
	}
}

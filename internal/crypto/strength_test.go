package crypto

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		want       StrengthReport
		wantPassed int
		wantRating Rating
	}{
		{
			name:       "empty",
			password:   "",
			want:       StrengthReport{},
			wantPassed: 0,
			wantRating: RatingWeak,
		},
		{
			name:     "eight lowercase",
			password: "abcdefgh",
			want: StrengthReport{
				HasLowercase: true,
				MinLength:    true,
				Length:       8,
			},
			wantPassed: 2,
			wantRating: RatingWeak,
		},
		{
			name:     "all checks",
			password: "Abcdef12!@#$",
			want: StrengthReport{
				HasLowercase: true,
				HasUppercase: true,
				HasDigit:     true,
				HasSymbol:    true,
				MinLength:    true,
				GoodLength:   true,
				Length:       12,
			},
			wantPassed: 6,
			wantRating: RatingStrong,
		},
		{
			name:     "four checks is good",
			password: "Abcdefg1",
			want: StrengthReport{
				HasLowercase: true,
				HasUppercase: true,
				HasDigit:     true,
				MinLength:    true,
				Length:       8,
			},
			wantPassed: 4,
			wantRating: RatingGood,
		},
		{
			name:     "five checks is good",
			password: "abcdefghij1!",
			want: StrengthReport{
				HasLowercase: true,
				HasDigit:     true,
				HasSymbol:    true,
				MinLength:    true,
				GoodLength:   true,
				Length:       12,
			},
			wantPassed: 5,
			wantRating: RatingGood,
		},
		{
			name:     "short mixed",
			password: "aB1~",
			want: StrengthReport{
				HasLowercase: true,
				HasUppercase: true,
				HasDigit:     true,
				HasSymbol:    true,
				Length:       4,
			},
			wantPassed: 4,
			wantRating: RatingGood,
		},
		{
			name:     "non-ascii counts runes only",
			password: "ééééééééé",
			want: StrengthReport{
				MinLength: true,
				Length:    9,
			},
			wantPassed: 1,
			wantRating: RatingWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.password)
			if got != tt.want {
				t.Errorf("Score(%q) = %+v, want %+v", tt.password, got, tt.want)
			}
			if got.Passed() != tt.wantPassed {
				t.Errorf("Score(%q).Passed() = %d, want %d", tt.password, got.Passed(), tt.wantPassed)
			}
			if got.Rating() != tt.wantRating {
				t.Errorf("Score(%q).Rating() = %s, want %s", tt.password, got.Rating(), tt.wantRating)
			}
		})
	}
}

func TestScoreGeneratedPasswords(t *testing.T) {
	for i := 0; i < 20; i++ {
		password, err := Generate(GoodLength, AllCategories())
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if r := Score(password).Rating(); r != RatingStrong {
			t.Errorf("Score(%q).Rating() = %s, want %s", password, r, RatingStrong)
		}
	}
}

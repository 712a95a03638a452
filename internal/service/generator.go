package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// MaxHashedCount bounds the batch size when Argon2id hashes are requested.
const MaxHashedCount = 10

var ErrInvalidRequest = errors.New("invalid request")

var validate = validator.New()

// GenerationRecorder stores audit records of successful generations.
type GenerationRecorder interface {
	Record(ctx context.Context, rec *model.GenerationRecord) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	recorder  GenerationRecorder
}

// NewGeneratorService creates a new GeneratorService. recorder may be nil.
func NewGeneratorService(g *crypto.Generator, recorder GenerationRecorder) *GeneratorService {
	return &GeneratorService{generator: g, recorder: recorder}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := validateRequest(req); err != nil {
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = crypto.DefaultLength
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if req.Hash && count > MaxHashedCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: count must be at most %d when hash is set", ErrInvalidRequest, MaxHashedCount)
	}
	requirements := crypto.Requirements{
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	passwords, err := s.generator.GenerateMany(count, length, requirements)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Passwords: make([]model.GeneratedPassword, len(passwords)),
		Length:    length,
		Count:     count,
	}
	for i, pw := range passwords {
		resp.Passwords[i] = model.GeneratedPassword{
			Password: pw,
			Strength: StrengthToResponse(crypto.Score(pw)),
		}
		if req.Hash {
			if err := ctx.Err(); err != nil {
				return model.GenerateResponse{}, err
			}
			hash, err := crypto.HashPassword(pw)
			if err != nil {
				return model.GenerateResponse{}, err
			}
			resp.Passwords[i].Hash = hash
		}
	}

	s.record(ctx, length, count, requirements)
	return resp, nil
}

// Score returns the strength report of a password.
func (s *GeneratorService) Score(req model.StrengthRequest) model.StrengthResponse {
	return StrengthToResponse(crypto.Score(req.Password))
}

// IsValidationError reports whether err should be shown to the caller as a
// bad request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || crypto.IsValidationError(err)
}

func (s *GeneratorService) record(ctx context.Context, length, count int, req crypto.Requirements) {
	if s.recorder == nil {
		return
	}

	enabled := req.Resolve().Enabled()
	categories := make([]string, len(enabled))
	for i, c := range enabled {
		categories[i] = c.String()
	}

	rec := &model.GenerationRecord{Length: length, Count: count, Categories: categories}
	if err := s.recorder.Record(ctx, rec); err != nil {
		slog.Warn("recording generation failed", "error", err)
	}
}

func validateRequest(req model.GenerateRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s", strings.ToLower(fe.Field()), boundWord(fe.Tag()), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, ", "))
}

func boundWord(tag string) string {
	switch tag {
	case "gte":
		return "at least"
	case "lte":
		return "at most"
	}
	return tag
}

// StrengthToResponse converts a strength report to its JSON form.
func StrengthToResponse(r crypto.StrengthReport) model.StrengthResponse {
	return model.StrengthResponse{
		HasLowercase: r.HasLowercase,
		HasUppercase: r.HasUppercase,
		HasDigit:     r.HasDigit,
		HasSymbol:    r.HasSymbol,
		MinLength:    r.MinLength,
		GoodLength:   r.GoodLength,
		Length:       r.Length,
		Passed:       r.Passed(),
		Rating:       string(r.Rating()),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

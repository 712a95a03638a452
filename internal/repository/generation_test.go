package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vaultpass/passgen-go/internal/model"
)

func TestNewGenerationRepository(t *testing.T) {
	repo := NewGenerationRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil GenerationRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestGenerationRepositoryWithoutDB(t *testing.T) {
	repo := NewGenerationRepository(nil)

	rec := &model.GenerationRecord{Length: 12, Count: 1, Categories: []string{"lowercase"}}
	if err := repo.Record(context.Background(), rec); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("Record() error = %v, want %v", err, ErrNoDatabase)
	}
	if rec.ID != "" {
		t.Errorf("Record() assigned ID %q without a database", rec.ID)
	}

	if _, err := repo.ListRecent(context.Background(), 10); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("ListRecent() error = %v, want %v", err, ErrNoDatabase)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: 0, want: DefaultHistoryLimit},
		{in: -1, want: DefaultHistoryLimit},
		{in: 10, want: 10},
		{in: MaxHistoryLimit, want: MaxHistoryLimit},
		{in: MaxHistoryLimit + 1, want: MaxHistoryLimit},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCategoriesColumn(t *testing.T) {
	in := []string{"lowercase", "digits"}
	col := joinCategories(in)
	if col != "lowercase,digits" {
		t.Fatalf("joinCategories() = %q", col)
	}
	if got := splitCategories(col); !reflect.DeepEqual(got, in) {
		t.Errorf("splitCategories(%q) = %v, want %v", col, got, in)
	}
	if got := splitCategories(""); got == nil || len(got) != 0 {
		t.Errorf("splitCategories(\"\") = %v, want empty slice", got)
	}
}

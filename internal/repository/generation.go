package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

var ErrNoDatabase = errors.New("audit log database not configured")

// GenerationRepository persists generation audit records.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Record inserts rec, assigning a fresh ID when it has none.
func (r *GenerationRepository) Record(ctx context.Context, rec *model.GenerationRecord) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `INSERT INTO generation_log (id, length, count, categories) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.Length, rec.Count, joinCategories(rec.Categories))
	return err
}

// ListRecent returns up to limit records, newest first.
func (r *GenerationRepository) ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}

	query := `SELECT id, length, count, categories, created_at
		FROM generation_log ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GenerationRecord
	for rows.Next() {
		var (
			rec        model.GenerationRecord
			categories string
		)
		if err := rows.Scan(&rec.ID, &rec.Length, &rec.Count, &categories, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Categories = splitCategories(categories)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

func joinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

func splitCategories(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

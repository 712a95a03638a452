package service

import (
	"context"

	"github.com/vaultpass/passgen-go/internal/model"
)

// GenerationLister reads audit records.
type GenerationLister interface {
	ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error)
}

// HistoryService exposes the generation audit log.
type HistoryService struct {
	lister GenerationLister
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(lister GenerationLister) *HistoryService {
	return &HistoryService{lister: lister}
}

// Recent returns up to limit audit records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) (model.HistoryResponse, error) {
	records, err := s.lister.ListRecent(ctx, limit)
	if err != nil {
		return model.HistoryResponse{}, err
	}

	resp := model.HistoryResponse{Records: make([]model.GenerationRecordResponse, len(records))}
	for i, r := range records {
		resp.Records[i] = model.GenerationRecordResponse{
			ID:         r.ID,
			Length:     r.Length,
			Count:      r.Count,
			Categories: r.Categories,
			CreatedAt:  r.CreatedAt,
		}
	}
	return resp, nil
}

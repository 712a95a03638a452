package model

import "time"

// GenerationRecord is one row of the generation audit log. It never carries
// the generated passwords.
type GenerationRecord struct {
	ID         string
	Length     int
	Count      int
	Categories []string
	CreatedAt  time.Time
}

// GenerationRecordResponse represents an audit record in API responses.
type GenerationRecordResponse struct {
	ID         string    `json:"id"`
	Length     int       `json:"length"`
	Count      int       `json:"count"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryResponse lists recent generation records, newest first.
type HistoryResponse struct {
	Records []GenerationRecordResponse `json:"records"`
}

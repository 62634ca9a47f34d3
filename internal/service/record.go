// Package service contains the business logic for the namebook server.
// Services validate inputs and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/namebook/internal/domain"
	"github.com/pkordes/namebook/internal/repo"
)

// RecordService implements business logic for Record operations.
type RecordService struct {
	repo repo.RecordRepo
}

// NewRecordService constructs a RecordService backed by the provided RecordRepo.
func NewRecordService(r repo.RecordRepo) *RecordService {
	return &RecordService{repo: r}
}

// Create validates and persists a new record.
// A blank or whitespace-only name returns domain.ErrValidation and nothing is written.
// Length is left to the storage layer.
func (s *RecordService) Create(ctx context.Context, name string) (domain.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Record{}, fmt.Errorf("service.RecordService.Create: %w: name is required", domain.ErrValidation)
	}

	rec, err := s.repo.Create(ctx, name)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.RecordService.Create: %w", err)
	}
	return rec, nil
}

// List returns all records in insertion order.
func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RecordService.List: %w", err)
	}
	return records, nil
}

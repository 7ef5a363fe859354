package repository

import (
	"context"

	"logrange-backend/internal/model"
)

//go:generate mockgen -source=store_adapter.go -destination=../mocks/repository/mock_store_adapter.go -package=repository_mock

// StoreAdapter runs an inclusive time-range query against one backing store.
// Implementations push both the range and the limit into the store query.
type StoreAdapter interface {
	QueryRange(ctx context.Context, rng model.QueryRange, limit int) ([]model.LogRecord, error)
}

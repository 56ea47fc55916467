// Package usecase implements the business logic for search-history operations.
package usecase

import (
	"context"

	"weather_app/internal/feature/history/domain/entity"
)

// HistoryRepository abstracts the persistence layer for search-history data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type HistoryRepository interface {
	// Insert persists a new history entry. The store assigns the timestamp.
	Insert(ctx context.Context, rec *entity.SearchHistory) error

	// ListByUser returns the entries recorded for one user in insertion order.
	ListByUser(ctx context.Context, userID uint) ([]entity.SearchHistory, error)

	// ListJoined returns every entry joined with its owner's username.
	// Entries whose user_id is null or dangling are omitted.
	ListJoined(ctx context.Context) ([]entity.SearchLog, error)
}

// HistoryUsecase provides business logic for search-history operations.
type HistoryUsecase struct {
	repo HistoryRepository
}

// NewHistoryUsecase creates a new HistoryUsecase with the given repository.
func NewHistoryUsecase(r HistoryRepository) *HistoryUsecase {
	return &HistoryUsecase{repo: r}
}

// Record stores one lookup for the given user. The caller is trusted to
// pass an existing user ID; the schema keeps the reference unenforced.
func (u *HistoryUsecase) Record(ctx context.Context, userID uint, city string) error {
	rec := &entity.SearchHistory{City: city, UserID: &userID}
	return u.repo.Insert(ctx, rec)
}

// ListForUser returns the user's lookups, oldest first.
// A user with no history yields an empty slice, not an error.
func (u *HistoryUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.SearchHistory, error) {
	return u.repo.ListByUser(ctx, userID)
}

// ListAll returns the aggregate report across all users.
func (u *HistoryUsecase) ListAll(ctx context.Context) ([]entity.SearchLog, error) {
	return u.repo.ListJoined(ctx)
}

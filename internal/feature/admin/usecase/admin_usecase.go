// Package usecase implements the administrator report gate.
package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"

	"weather_app/internal/feature/history/domain/entity"
)

// ErrAccessDenied is returned when the supplied secret does not match.
// It reveals nothing about whether any report data exists.
var ErrAccessDenied = errors.New("access denied")

// Config holds configuration for the admin gate.
type Config struct {
	// Secret is the shared secret that grants access to the aggregate
	// report. It is a process-wide capability, not a per-user credential,
	// and cannot be rotated at runtime.
	Secret string
}

// LoadConfig loads admin gate configuration from environment variables.
func LoadConfig() Config {
	return Config{Secret: os.Getenv("ADMIN_SECRET")}
}

// SearchLogLister abstracts the aggregate report source.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type SearchLogLister interface {
	ListAll(ctx context.Context) ([]entity.SearchLog, error)
}

// AdminUsecase gates access to the joined search-history report behind a
// shared secret. No administrator identity or session is established.
type AdminUsecase struct {
	cfg  Config
	logs SearchLogLister
}

// NewAdminUsecase creates a new AdminUsecase with the given configuration and report source.
func NewAdminUsecase(cfg Config, logs SearchLogLister) *AdminUsecase {
	return &AdminUsecase{cfg: cfg, logs: logs}
}

// SearchLogs returns the aggregate report when the supplied secret matches
// the configured one. The comparison is constant-time. An unset secret
// denies all access rather than granting it.
func (u *AdminUsecase) SearchLogs(ctx context.Context, secret string) ([]entity.SearchLog, error) {
	if u.cfg.Secret == "" {
		return nil, ErrAccessDenied
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(u.cfg.Secret)) != 1 {
		return nil, ErrAccessDenied
	}
	return u.logs.ListAll(ctx)
}

// Package entity defines the domain models for the history feature.
package entity

import "time"

// SearchHistory represents one recorded weather lookup.
type SearchHistory struct {
	// ID is the unique identifier for the entry.
	ID uint `gorm:"primaryKey"`

	// City is the query string exactly as the user entered it.
	// It is neither validated nor normalized.
	City string `gorm:"size:255;not null"`

	// Timestamp is assigned by the store at insert time.
	Timestamp time.Time `gorm:"autoCreateTime"`

	// UserID references users.id. The reference is kept by convention,
	// not enforced by the schema, and the column is nullable.
	UserID *uint `gorm:"index"`
}

// TableName overrides gorm's default pluralization to match the
// original schema.
func (SearchHistory) TableName() string {
	return "search_history"
}

// SearchLog is one row of the administrator report: a history entry
// joined with the username that recorded it.
type SearchLog struct {
	Username  string
	City      string
	Timestamp time.Time
}

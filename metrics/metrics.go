package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the bookshelf.
type Metrics struct {
	// BooksByStatus maps a reading status to the number of books in open catalogs
	BooksByStatus map[string]int64 `json:"books_by_status"`

	// BooksByCategory maps a category to the number of books in open catalogs
	BooksByCategory map[string]int64 `json:"books_by_category"`

	// OpenCatalogs is the number of catalogs loaded since startup
	OpenCatalogs int64 `json:"open_catalogs"`

	// RegisteredUsers is the number of accounts
	RegisteredUsers int64 `json:"registered_users"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the bookshelf.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetBookCounts returns book counts by status and by category
	GetBookCounts(ctx context.Context) (byStatus, byCategory map[string]int64, err error)

	// GetOpenCatalogs returns the number of loaded catalogs
	GetOpenCatalogs(ctx context.Context) (int64, error)

	// GetRegisteredUsers returns the number of registered accounts
	GetRegisteredUsers(ctx context.Context) (int64, error)
}

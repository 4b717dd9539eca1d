package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/bookshelf/book"
)

// Snapshotter is satisfied by *book.Service
type Snapshotter interface {
	Snapshot() (book.Stats, int)
}

// UserCounter is satisfied by *user.Service
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

// CatalogCollector implements Collector over the catalog service and the user service
type CatalogCollector struct {
	catalogs Snapshotter
	users    UserCounter
}

func NewCatalogCollector(catalogs Snapshotter, users UserCounter) *CatalogCollector {
	return &CatalogCollector{
		catalogs: catalogs,
		users:    users,
	}
}

func (c *CatalogCollector) Collect(ctx context.Context) (Metrics, error) {
	byStatus, byCategory, err := c.GetBookCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting book counts: %w", err)
	}
	open, err := c.GetOpenCatalogs(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting open catalogs: %w", err)
	}
	users, err := c.GetRegisteredUsers(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting registered users: %w", err)
	}
	return Metrics{
		BooksByStatus:   byStatus,
		BooksByCategory: byCategory,
		OpenCatalogs:    open,
		RegisteredUsers: users,
		Timestamp:       time.Now(),
	}, nil
}

func (c *CatalogCollector) GetBookCounts(ctx context.Context) (map[string]int64, map[string]int64, error) {
	stats, _ := c.catalogs.Snapshot()
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for s, n := range stats.ByStatus {
		byStatus[s.String()] = int64(n)
	}
	byCategory := make(map[string]int64, len(stats.ByCategory))
	for cat, n := range stats.ByCategory {
		byCategory[cat.String()] = int64(n)
	}
	return byStatus, byCategory, nil
}

func (c *CatalogCollector) GetOpenCatalogs(ctx context.Context) (int64, error) {
	_, open := c.catalogs.Snapshot()
	return int64(open), nil
}

func (c *CatalogCollector) GetRegisteredUsers(ctx context.Context) (int64, error) {
	n, err := c.users.Count(ctx)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

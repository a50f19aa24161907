package store

import (
	"context"

	"github.com/josephgoksu/kanban-sheets/models"
)

// Connector is the row-oriented data access contract shared by every
// backend. Reads are served from the in-memory cache; mutations write
// through to the backing store before returning.
type Connector interface {
	// Reload re-reads the backing store into the cache. A missing or empty
	// store yields an empty table with the fixed schema.
	Reload(ctx context.Context) error

	// GetOne returns the row matching (project, taskID). It returns an error
	// wrapping ErrTaskNotFound when no row matches.
	GetOne(project, taskID string) (models.Row, error)

	// Search filters the cache. With a nil page the full match list is
	// returned; otherwise a single page.
	Search(filters *models.SearchFilters, page *models.Pagination) (*models.SearchResult, error)

	// Add appends rows given in schema column order in a single write.
	// It does not check for duplicate keys.
	Add(ctx context.Context, rows [][]string) error

	// Update applies sparse patches and flushes once if any item matched.
	Update(ctx context.Context, patches []models.TaskPatch) (models.BatchResult, error)

	// SprintStats aggregates rows by sprint, optionally for one project.
	SprintStats(project string) ([]models.SprintStat, error)

	// Close releases backend resources.
	Close() error
}

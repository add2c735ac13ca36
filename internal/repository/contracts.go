// Package repository declares the persistence boundary. The store
// exchanges whole activity documents; there are no partial-field
// updates, and concurrent admin saves are last-write-wins (no version
// check) — a documented risk, not something this layer arbitrates.
package repository

import (
	"context"

	"github.com/festops/scoreboard-service/internal/model"
)

// Pinger represents a minimal readiness probe capability, decoupling
// health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ActivityRepository declares whole-document persistence for sports
// activities. Save upserts the complete document under the activity id.
type ActivityRepository interface {
	Save(ctx context.Context, a *model.SportsActivity[model.Game]) error
	Get(ctx context.Context, id string) (*model.SportsActivity[model.Game], error)
	List(ctx context.Context, p Page) (PageResult[*model.SportsActivity[model.Game]], error)
	Delete(ctx context.Context, id string) error
}

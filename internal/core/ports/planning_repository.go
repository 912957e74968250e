package ports

import (
	"context"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// PlanningRepository defines persistence operations for planning entries.
// The backing table enforces UNIQUE(user_id, date).
type PlanningRepository interface {
	// FindByUserDate returns the single entry for (userID, date) or
	// domain.ErrEntryNotFound.
	FindByUserDate(ctx context.Context, userID, date string) (*domain.PlanningEntry, error)
	// ListRange returns every entry with date in [from, to] inclusive,
	// ordered by date then user.
	ListRange(ctx context.Context, from, to string) ([]domain.PlanningEntry, error)
	// Insert persists a new entry. The statement upserts on (user_id, date)
	// so a concurrent writer cannot violate uniqueness; last write wins.
	// The returned entry reflects exactly what was written.
	Insert(ctx context.Context, entry *domain.PlanningEntry) (*domain.PlanningEntry, error)
	// Update replaces status and note on an existing entry, preserving its id.
	Update(ctx context.Context, id string, status domain.DayStatus, note string) error
}

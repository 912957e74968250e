package ports

import (
	"context"
	"time"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// Actor identifies the authenticated principal performing an operation.
// It is extracted from the verified JWT claims on every request; no
// process-wide session state exists.
type Actor struct {
	ID       string
	Username string
	Role     string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// CanEdit reports whether the actor may mutate the cell row of userID:
// admins edit anyone, nurses only themselves.
func (a Actor) CanEdit(userID string) bool {
	return a.IsAdmin() || a.ID == userID
}

// PlanningService exposes the planning grid's state operations.
type PlanningService interface {
	// MonthSnapshot loads the full roster and every entry of the month.
	MonthSnapshot(ctx context.Context, year int, month time.Month) (*domain.MonthSnapshot, error)
	// SetStatus upserts the status (and note) of one (user, date) cell.
	// Returns domain.ErrForbidden without mutating anything when the actor
	// may not edit the cell.
	SetStatus(ctx context.Context, actor Actor, userID, date string, status domain.DayStatus, note string) (*domain.PlanningEntry, error)
	// SetNote upserts the note of one cell, preserving the existing status
	// (or defaulting to undefined when the cell has no entry yet).
	SetNote(ctx context.Context, actor Actor, userID, date, note string) (*domain.PlanningEntry, error)
}

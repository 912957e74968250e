package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planisoins/planning-api/internal/core/domain"
	"github.com/planisoins/planning-api/internal/core/ports"
)

// PlanningService implements the planning grid state operations on top of
// the planning and user repositories. Every mutation is write-through: the
// store write must succeed before anything is reported back, so there is
// never optimistic state to roll back.
type PlanningService struct {
	planning ports.PlanningRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPlanningService(planning ports.PlanningRepository, users ports.UserRepository, logger zerolog.Logger) *PlanningService {
	return &PlanningService{planning: planning, users: users, logger: logger}
}

// MonthSnapshot loads the nurse roster (global, not month-scoped) and every
// planning entry with a date inside the month, replacing nothing
// incrementally: callers get a wholesale view of the month.
func (s *PlanningService) MonthSnapshot(ctx context.Context, year int, month time.Month) (*domain.MonthSnapshot, error) {
	roster, err := s.users.ListByRole(ctx, domain.RoleNurse)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	first, last := domain.MonthBounds(year, month)
	entries, err := s.planning.ListRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("load planning: %w", err)
	}

	return &domain.MonthSnapshot{
		Year:    year,
		Month:   month,
		Roster:  roster,
		Entries: entries,
	}, nil
}

// SetStatus assigns a status (and optional note) to one (user, date) cell.
// If an entry already exists for the cell it is updated in place, keeping
// its id; otherwise a new entry is created. The store's uniqueness
// constraint on (user_id, date) backs this up against races.
func (s *PlanningService) SetStatus(ctx context.Context, actor ports.Actor, userID, date string, status domain.DayStatus, note string) (*domain.PlanningEntry, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.upsert(ctx, actor, userID, date, &status, note)
}

// SetNote attaches a note to one cell without touching its status. Creating
// a note on a cell that has no entry yet creates one with the undefined
// status.
func (s *PlanningService) SetNote(ctx context.Context, actor ports.Actor, userID, date, note string) (*domain.PlanningEntry, error) {
	return s.upsert(ctx, actor, userID, date, nil, note)
}

// upsert is the shared mutation path. A nil status means "preserve the
// existing one, default to undefined on create".
func (s *PlanningService) upsert(ctx context.Context, actor ports.Actor, userID, date string, status *domain.DayStatus, note string) (*domain.PlanningEntry, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	if !actor.CanEdit(userID) {
		s.logger.Warn().
			Str("actor", actor.Username).
			Str("user_id", userID).
			Str("date", date).
			Msg("planning edit denied")
		return nil, domain.ErrForbidden
	}

	// Blank notes are stored as absent, never as an empty string.
	note = strings.TrimSpace(note)

	existing, err := s.planning.FindByUserDate(ctx, userID, date)
	switch {
	case err == nil:
		newStatus := existing.Status
		if status != nil {
			newStatus = *status
		}
		if err := s.planning.Update(ctx, existing.ID, newStatus, note); err != nil {
			return nil, fmt.Errorf("update entry: %w", err)
		}
		updated := *existing
		updated.Status = newStatus
		updated.Note = note
		s.logEntry(&updated, "planning entry updated")
		return &updated, nil

	case errors.Is(err, domain.ErrEntryNotFound):
		newStatus := domain.StatusUndefined
		if status != nil {
			newStatus = *status
		}
		entry := &domain.PlanningEntry{
			ID:     uuid.NewString(),
			UserID: userID,
			Date:   date,
			Status: newStatus,
			Note:   note,
		}
		created, err := s.planning.Insert(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("insert entry: %w", err)
		}
		s.logEntry(created, "planning entry created")
		return created, nil

	default:
		return nil, fmt.Errorf("find entry: %w", err)
	}
}

func (s *PlanningService) logEntry(e *domain.PlanningEntry, msg string) {
	s.logger.Info().
		Str("user_id", e.UserID).
		Str("date", e.Date).
		Str("status", string(e.Status)).
		Bool("has_note", e.HasNote()).
		Msg(msg)
}

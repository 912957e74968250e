package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planisoins/planning-api/internal/core/domain"
)

type PlanningRepository struct {
	pool *pgxpool.Pool
}

func NewPlanningRepository(pool *pgxpool.Pool) *PlanningRepository {
	return &PlanningRepository{pool: pool}
}

func (r *PlanningRepository) FindByUserDate(ctx context.Context, userID, date string) (*domain.PlanningEntry, error) {
	e := &domain.PlanningEntry{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), status, COALESCE(note, ''), created_at
		 FROM planning
		 WHERE user_id = $1 AND date = $2::date`, userID, date,
	).Scan(&e.ID, &e.UserID, &e.Date, &e.Status, &e.Note, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return e, nil
}

func (r *PlanningRepository) ListRange(ctx context.Context, from, to string) ([]domain.PlanningEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), status, COALESCE(note, ''), created_at
		 FROM planning
		 WHERE date >= $1::date AND date <= $2::date
		 ORDER BY date, user_id`, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []domain.PlanningEntry
	for rows.Next() {
		var e domain.PlanningEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Status, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert upserts on (user_id, date) so two racing writers can never create a
// duplicate cell; the second write simply wins.
func (r *PlanningRepository) Insert(ctx context.Context, entry *domain.PlanningEntry) (*domain.PlanningEntry, error) {
	e := *entry
	err := r.pool.QueryRow(ctx,
		`INSERT INTO planning (id, user_id, date, status, note)
		 VALUES ($1, $2, $3::date, $4, NULLIF($5, ''))
		 ON CONFLICT (user_id, date)
		 DO UPDATE SET status = EXCLUDED.status, note = EXCLUDED.note
		 RETURNING id, created_at`,
		entry.ID, entry.UserID, entry.Date, entry.Status, entry.Note,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return &e, nil
}

func (r *PlanningRepository) Update(ctx context.Context, id string, status domain.DayStatus, note string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE planning SET status = $1, note = NULLIF($2, '') WHERE id = $3`,
		status, note, id,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

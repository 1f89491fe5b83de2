package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yakunat/the5quad-bot/internal/domain"
	"github.com/Yakunat/the5quad-bot/internal/domain/entities"
	"github.com/Yakunat/the5quad-bot/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

// RegistrationRepository implements output.RegistrationRepository using pgx directly.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entities.Registration) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO registrations (event_id, user_id, username, first_name, list, status, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		registration.EventID, registration.UserID, registration.Username, registration.FirstName,
		registration.List, registration.Status, registration.JoinedAt,
	).Scan(&registration.ID, &registration.CreatedAt, &registration.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) FindActiveByEventIDAndUserID(ctx context.Context, eventID, userID int64) (*entities.Registration, error) {
	var reg entities.Registration
	err := r.db.QueryRow(ctx,
		`SELECT id, event_id, user_id, username, first_name, list, status, joined_at, created_at, updated_at
		 FROM registrations
		 WHERE event_id = $1 AND user_id = $2 AND status = $3`,
		eventID, userID, domain.RegistrationActive,
	).Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Username, &reg.FirstName,
		&reg.List, &reg.Status, &reg.JoinedAt, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotRegistered
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &reg, nil
}

// FindActiveByEventIDAndList returns one list of an event in joined order,
// with id as tiebreaker so promotion is deterministic.
func (r *RegistrationRepository) FindActiveByEventIDAndList(ctx context.Context, eventID int64, list string) ([]entities.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, user_id, username, first_name, list, status, joined_at, created_at, updated_at
		 FROM registrations
		 WHERE event_id = $1 AND list = $2 AND status = $3
		 ORDER BY joined_at, id`,
		eventID, list, domain.RegistrationActive,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []entities.Registration
	for rows.Next() {
		var reg entities.Registration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Username, &reg.FirstName,
			&reg.List, &reg.Status, &reg.JoinedAt, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *RegistrationRepository) CountActiveByEventIDAndList(ctx context.Context, eventID int64, list string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations
		 WHERE event_id = $1 AND list = $2 AND status = $3`,
		eventID, list, domain.RegistrationActive,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) FindStatusByUserID(ctx context.Context, userID int64) ([]entities.UserStatus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.scheduled_at, r.list
		 FROM events e
		 JOIN registrations r ON e.id = r.event_id
		 WHERE r.user_id = $1 AND r.status = $2 AND e.status = $3
		 ORDER BY e.scheduled_at, e.id`,
		userID, domain.RegistrationActive, domain.EventActive,
	)
	if err != nil {
		return nil, fmt.Errorf("list user registrations: %w", err)
	}
	defer rows.Close()

	var out []entities.UserStatus
	for rows.Next() {
		var st entities.UserStatus
		if err := rows.Scan(&st.EventID, &st.ScheduledAt, &st.List); err != nil {
			return nil, fmt.Errorf("scan user status: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *RegistrationRepository) UpdateList(ctx context.Context, id int64, list string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE registrations SET list = $1, updated_at = now() WHERE id = $2`,
		list, id,
	)
	if err != nil {
		return fmt.Errorf("update registration list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

func (r *RegistrationRepository) Cancel(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE registrations SET status = $1, updated_at = now() WHERE id = $2`,
		domain.RegistrationCancelled, id,
	)
	if err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

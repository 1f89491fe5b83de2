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

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository using pgx directly.
type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO events (scheduled_at, max_players, description, created_by, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		event.ScheduledAt, event.MaxPlayers, event.Description, event.CreatedBy, event.Status,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	var e entities.Event
	err := r.db.QueryRow(ctx,
		`SELECT id, scheduled_at, max_players, description, created_by, status, created_at, updated_at
		 FROM events WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.ScheduledAt, &e.MaxPlayers, &e.Description, &e.CreatedBy, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) FindActive(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, scheduled_at, max_players, description, created_by, status, created_at, updated_at
		 FROM events
		 WHERE status = $1
		 ORDER BY scheduled_at, id`,
		domain.EventActive,
	)
	if err != nil {
		return nil, fmt.Errorf("list active events: %w", err)
	}
	defer rows.Close()

	var events []entities.Event
	for rows.Next() {
		var e entities.Event
		if err := rows.Scan(&e.ID, &e.ScheduledAt, &e.MaxPlayers, &e.Description, &e.CreatedBy, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Cancel(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET status = $1, updated_at = now() WHERE id = $2`,
		domain.EventCancelled, id,
	)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

package bookings

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"artisanhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, b models.Booking) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings (id, user_id, artisan_id, service, date, time_slot, location, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.ArtisanID, b.Service, b.Date, b.TimeSlot, b.Location, b.Status)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id, userID string) (*models.Booking, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, artisan_id, service, date, time_slot, location, status, created_at, updated_at
		FROM bookings
		WHERE id = ? AND user_id = ?
	`, id, userID)

	var b models.Booking
	var created, updated time.Time
	if err := row.Scan(
		&b.ID, &b.UserID, &b.ArtisanID, &b.Service, &b.Date, &b.TimeSlot,
		&b.Location, &b.Status, &created, &updated,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.CreatedAt = created
	b.UpdatedAt = updated
	return &b, nil
}

// ListByUser returns the user's bookings, newest first. statuses narrows
// the result when non-empty.
func (r *Repo) ListByUser(ctx context.Context, userID string, statuses []string, limit, offset int) ([]models.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, artisan_id, service, date, time_slot, location, status, created_at, updated_at
		FROM bookings
		WHERE user_id = ?
	`
	args := []any{userID}

	if len(statuses) > 0 {
		query += " AND status IN (?" + strings.Repeat(",?", len(statuses)-1) + ")"
		for _, st := range statuses {
			args = append(args, st)
		}
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	out := make([]models.Booking, 0, limit)
	for rows.Next() {
		var b models.Booking
		var created, updated time.Time
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.ArtisanID, &b.Service, &b.Date, &b.TimeSlot,
			&b.Location, &b.Status, &created, &updated,
		); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		b.CreatedAt = created
		b.UpdatedAt = updated
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// UpdateStatus moves a booking to the given status and reports whether a
// row was affected.
func (r *Repo) UpdateStatus(ctx context.Context, id, userID, status string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`, status, id, userID)
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

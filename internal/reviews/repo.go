package reviews

import (
	"context"
	"database/sql"
	"fmt"

	"artisanhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Summary aggregates the reviews users have submitted for one artisan.
// Seed reviews baked into the catalog record are not included; callers
// combine the two themselves.
type Summary struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

// Create stores the review and returns it with the assigned id and
// timestamp in a single round trip.
func (r *Repo) Create(ctx context.Context, userID, artisanID string, rating int, text string) (*models.Review, error) {
	review := models.Review{
		UserID:    userID,
		ArtisanID: artisanID,
		Rating:    rating,
		Text:      text,
	}

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (user_id, artisan_id, rating, text)
		VALUES (?, ?, ?, ?)
		RETURNING id, timestamp
	`, userID, artisanID, rating, text).Scan(&review.ID, &review.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &review, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	review, err := scanReview(r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, artisan_id, rating, COALESCE(text, ''), timestamp
		FROM reviews
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

// ListByArtisan returns stored reviews newest first. Within the same
// timestamp the later submission wins, so the ordering is total even when
// two reviews land in the same second.
func (r *Repo) ListByArtisan(ctx context.Context, artisanID string, limit, offset int) ([]models.Review, error) {
	limit, offset = clampPage(limit, offset)

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, artisan_id, rating, COALESCE(text, ''), timestamp
		FROM reviews
		WHERE artisan_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`, artisanID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]models.Review, 0, limit)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		out = append(out, *review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// Summarize returns the stored-review count and mean rating for the
// artisan; an artisan with no stored reviews summarizes to {0, 0}.
func (r *Repo) Summarize(ctx context.Context, artisanID string) (Summary, error) {
	var s Summary
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE artisan_id = ?
	`, artisanID).Scan(&s.Count, &s.AverageRating)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize reviews: %w", err)
	}
	return s, nil
}

// Delete removes the review only when it belongs to the given author.
func (r *Repo) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*models.Review, error) {
	var review models.Review
	if err := row.Scan(
		&review.ID, &review.UserID, &review.ArtisanID,
		&review.Rating, &review.Text, &review.Timestamp,
	); err != nil {
		return nil, err
	}
	return &review, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

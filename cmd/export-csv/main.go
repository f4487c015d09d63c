package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"artisanhub/internal/catalog"
	"artisanhub/pkg/database"
)

func main() {
	var (
		artisansOut = flag.String("artisans", "data/artisans.csv", "output CSV path for catalog artisans")
		bookingsOut = flag.String("bookings", "data/bookings.csv", "output CSV path for bookings")
		reviewsOut  = flag.String("reviews", "data/reviews.csv", "output CSV path for reviews")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	store := catalog.MustLoad()

	if err := exportArtisans(store, *artisansOut); err != nil {
		log.Fatalf("export artisans failed: %v", err)
	}
	if err := exportBookings(ctx, db, *bookingsOut); err != nil {
		log.Fatalf("export bookings failed: %v", err)
	}
	if err := exportReviews(ctx, db, *reviewsOut); err != nil {
		log.Fatalf("export reviews failed: %v", err)
	}

	log.Printf("exported artisans to %s, bookings to %s, reviews to %s", *artisansOut, *bookingsOut, *reviewsOut)
}

func newCSVWriter(outPath string, header []string) (*os.File, *csv.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, w, nil
}

func exportArtisans(store *catalog.Store, outPath string) error {
	f, w, err := newCSVWriter(outPath, []string{
		"id", "name", "category_id", "location", "rating", "review_count",
		"verified", "featured", "years_experience", "skills",
	})
	if err != nil {
		return err
	}
	defer f.Close()

	for _, a := range store.Artisans() {
		record := []string{
			a.ID,
			a.Name,
			a.CategoryID,
			a.Location,
			strconv.FormatFloat(a.Rating, 'f', 1, 64),
			strconv.Itoa(a.ReviewCount),
			strconv.FormatBool(a.Verified),
			strconv.FormatBool(a.Featured),
			strconv.Itoa(a.YearsExperience),
			strings.Join(a.Skills, "|"),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func exportBookings(ctx context.Context, db *sql.DB, outPath string) error {
	f, w, err := newCSVWriter(outPath, []string{
		"id", "user_id", "artisan_id", "service", "date", "time_slot", "location", "status", "created_at",
	})
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, artisan_id, service, date, time_slot, location, status, created_at
		FROM bookings
		ORDER BY created_at
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, userID, artisanID, service, date, slot, location, status string
		var created time.Time
		if err := rows.Scan(&id, &userID, &artisanID, &service, &date, &slot, &location, &status, &created); err != nil {
			return err
		}
		record := []string{id, userID, artisanID, service, date, slot, location, status, created.UTC().Format(time.RFC3339)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportReviews(ctx context.Context, db *sql.DB, outPath string) error {
	f, w, err := newCSVWriter(outPath, []string{
		"id", "user_id", "artisan_id", "rating", "text", "timestamp",
	})
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, artisan_id, rating, COALESCE(text, ''), timestamp
		FROM reviews
		ORDER BY timestamp
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var userID, artisanID, text string
		var rating int
		var ts time.Time
		if err := rows.Scan(&id, &userID, &artisanID, &rating, &text, &ts); err != nil {
			return err
		}
		record := []string{
			fmt.Sprintf("%d", id), userID, artisanID, strconv.Itoa(rating), text, ts.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

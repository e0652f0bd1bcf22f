package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meteo-data/weather-ingest/internal/models"
)

// ErrUnavailable marks any connectivity or execution failure against the
// store. Callers branch on it with errors.Is; no retry happens here.
var ErrUnavailable = errors.New("database unavailable")

// ReadingRepository handles data access for weather readings.
type ReadingRepository struct {
	pool *pgxpool.Pool
}

// NewReadingRepository creates a new reading repository.
func NewReadingRepository(pool *pgxpool.Pool) *ReadingRepository {
	return &ReadingRepository{pool: pool}
}

// Ping verifies store connectivity for the health probe.
func (r *ReadingRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// InsertOrSkip attempts to create the unique (city,date) row. It returns
// false without error when the pair already exists; the conflict is not a
// failure.
func (r *ReadingRepository) InsertOrSkip(ctx context.Context, reading models.WeatherReading) (bool, error) {
	query := `
		INSERT INTO weather_readings (date, city, temp_max_c, temp_min_c, precip_mm, cloud_pct)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (city, date) DO NOTHING
		RETURNING 1
	`

	var one int
	err := r.pool.QueryRow(ctx, query,
		reading.Date,
		reading.City,
		reading.TempMaxC,
		reading.TempMinC,
		reading.PrecipMM,
		reading.CloudPct,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return true, nil
}

// ListDistinctCities returns every known city, alphabetically ascending and
// case-sensitive.
func (r *ReadingRepository) ListDistinctCities(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT city FROM weather_readings ORDER BY city ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return cities, nil
}

// CountInRange returns the number of readings for a city within the
// inclusive [from, to] date interval.
func (r *ReadingRepository) CountInRange(ctx context.Context, city, from, to string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM weather_readings
		WHERE city = $1 AND date >= $2 AND date <= $3
	`

	var count int
	err := r.pool.QueryRow(ctx, query, city, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

// PageInRange returns one page of readings for a city within the inclusive
// [from, to] interval, sorted by date ascending.
func (r *ReadingRepository) PageInRange(ctx context.Context, city, from, to string, limit, offset int) ([]models.RecordItem, error) {
	query := `
		SELECT date::text, temp_max_c, temp_min_c, precip_mm, cloud_pct
		FROM weather_readings
		WHERE city = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
		LIMIT $4 OFFSET $5
	`

	rows, err := r.pool.Query(ctx, query, city, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	items := make([]models.RecordItem, 0, limit)
	for rows.Next() {
		var item models.RecordItem
		err := rows.Scan(
			&item.Date,
			&item.TempMaxC,
			&item.TempMinC,
			&item.PrecipMM,
			&item.CloudPct,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return items, nil
}

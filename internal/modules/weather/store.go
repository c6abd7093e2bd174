// README: Observation store backed by PostgreSQL (append-only).
package weather

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoObservation = errors.New("no observation stored for city")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the observations table and the (city, observed_at)
// index used by LatestByCity.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS observations (
            id              bigserial PRIMARY KEY,
            city            text NOT NULL,
            wmo_code        bigint NOT NULL,
            phenomenon      text NOT NULL,
            air_temperature double precision NOT NULL,
            wind_speed      double precision NOT NULL,
            observed_at     bigint NOT NULL
        )`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        CREATE INDEX IF NOT EXISTS observations_city_observed_at_idx
            ON observations (city, observed_at DESC)`)
	return err
}

// Append stores one observation. Rows are never updated or merged, so
// re-ingesting an identical batch produces duplicate rows on purpose.
func (s *Store) Append(ctx context.Context, o *Observation) error {
	return s.db.QueryRow(ctx, `
        INSERT INTO observations (
            city, wmo_code, phenomenon, air_temperature, wind_speed, observed_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`,
		string(o.City),
		o.WMOCode,
		o.Phenomenon,
		o.AirTemperature,
		o.WindSpeed,
		o.Timestamp,
	).Scan(&o.ID)
}

// LatestByCity returns the observation with the maximum batch timestamp for
// the city. Equal timestamps fall back to the largest row id so the result
// is deterministic under duplicate ingests.
func (s *Store) LatestByCity(ctx context.Context, city City) (*Observation, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, city, wmo_code, phenomenon, air_temperature, wind_speed, observed_at
        FROM observations
        WHERE city = $1
        ORDER BY observed_at DESC, id DESC
        LIMIT 1`, string(city),
	)

	var o Observation
	err := row.Scan(&o.ID, &o.City, &o.WMOCode, &o.Phenomenon, &o.AirTemperature, &o.WindSpeed, &o.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoObservation
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// README: Observation store tests (DB-backed, skipped without a test DSN).
package weather

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("COURIERFEE_TEST_DSN")
	if dsn == "" {
		t.Skip("COURIERFEE_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE observations"); err != nil {
		t.Fatalf("truncate observations: %v", err)
	}
	return store
}

func TestLatestByCityEmpty(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.LatestByCity(context.Background(), CityTallinn)
	if !errors.Is(err, ErrNoObservation) {
		t.Fatalf("expected ErrNoObservation, got %v", err)
	}
}

func TestLatestByCityPicksMaxTimestamp(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rows := []*Observation{
		{City: CityTallinn, WMOCode: 26038, Phenomenon: "Clear", AirTemperature: 3, WindSpeed: 2, Timestamp: 100},
		{City: CityTallinn, WMOCode: 26038, Phenomenon: "Light rain", AirTemperature: 2, WindSpeed: 4, Timestamp: 300},
		{City: CityTallinn, WMOCode: 26038, Phenomenon: "Overcast", AirTemperature: 1, WindSpeed: 3, Timestamp: 200},
		{City: CityTartu, WMOCode: 26242, Phenomenon: "Snowfall", AirTemperature: -4, WindSpeed: 6, Timestamp: 900},
	}
	for _, o := range rows {
		if err := store.Append(ctx, o); err != nil {
			t.Fatalf("append: %v", err)
		}
		if o.ID == 0 {
			t.Fatal("append must assign a row id")
		}
	}

	got, err := store.LatestByCity(ctx, CityTallinn)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Timestamp != 300 || got.Phenomenon != "Light rain" {
		t.Errorf("latest = timestamp %d phenomenon %q, want 300 / Light rain", got.Timestamp, got.Phenomenon)
	}
}

func TestLatestByCityTieBreaksOnRowID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first := &Observation{City: CityParnu, WMOCode: 41803, Phenomenon: "Clear", Timestamp: 500}
	second := &Observation{City: CityParnu, WMOCode: 41803, Phenomenon: "Clear", Timestamp: 500}
	for _, o := range []*Observation{first, second} {
		if err := store.Append(ctx, o); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := store.LatestByCity(ctx, CityParnu)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("tie-break picked id %d, want newest row %d", got.ID, second.ID)
	}
}

func TestAppendNeverDedups(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	o := Observation{City: CityTartu, WMOCode: 26242, Phenomenon: "Sleet", AirTemperature: -1, WindSpeed: 8, Timestamp: 700}
	for i := 0; i < 3; i++ {
		dup := o
		if err := store.Append(ctx, &dup); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := store.LatestByCity(ctx, CityTartu)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Timestamp != 700 || got.Phenomenon != "Sleet" {
		t.Errorf("latest after duplicates = %+v, want the duplicated values", got)
	}
}

// README: Fee query service tests with a stubbed observation source.
package fee

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"courierfee/internal/modules/weather"
	"courierfee/internal/observability"
)

type stubSource struct {
	obs *weather.Observation
	err error
}

func (s *stubSource) LatestByCity(_ context.Context, _ weather.City) (*weather.Observation, error) {
	return s.obs, s.err
}

func newTestService(src ObservationSource) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(src, logger, observability.NewUnregisteredMetrics())
}

func TestQuoteComputesTotal(t *testing.T) {
	svc := newTestService(&stubSource{obs: &weather.Observation{
		City:           weather.CityTartu,
		AirTemperature: -11,
		WindSpeed:      15,
		Phenomenon:     "Drifting snow",
		Timestamp:      1710000000,
	}})

	got, err := svc.Quote(context.Background(), weather.CityTartu, VehicleScooter)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if got.String() != "5.00" {
		t.Errorf("quote = %s, want 5.00", got)
	}
}

func TestQuoteCarIgnoresExtremeWeather(t *testing.T) {
	svc := newTestService(&stubSource{obs: &weather.Observation{
		City:           weather.CityTallinn,
		AirTemperature: -30,
		WindSpeed:      21,
		Phenomenon:     "Light snowfall",
	}})

	got, err := svc.Quote(context.Background(), weather.CityTallinn, VehicleCar)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if got.String() != "4.00" {
		t.Errorf("quote = %s, want 4.00", got)
	}
}

func TestQuoteForbiddenWind(t *testing.T) {
	svc := newTestService(&stubSource{obs: &weather.Observation{
		City:      weather.CityTartu,
		WindSpeed: 20.1,
	}})

	_, err := svc.Quote(context.Background(), weather.CityTartu, VehicleBike)
	if !errors.Is(err, ErrVehicleForbidden) {
		t.Fatalf("expected ErrVehicleForbidden, got %v", err)
	}
	if err.Error() != "usage of selected vehicle type is forbidden" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestQuoteNoObservationData(t *testing.T) {
	svc := newTestService(&stubSource{err: weather.ErrNoObservation})

	_, err := svc.Quote(context.Background(), weather.CityParnu, VehicleBike)
	if !errors.Is(err, ErrNoObservationData) {
		t.Fatalf("expected ErrNoObservationData, got %v", err)
	}
}

func TestQuoteSourceFailure(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newTestService(&stubSource{err: boom})

	_, err := svc.Quote(context.Background(), weather.CityTallinn, VehicleCar)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
	if errors.Is(err, ErrNoObservationData) || errors.Is(err, ErrVehicleForbidden) {
		t.Fatalf("infra failure must not map to a business outcome: %v", err)
	}
}

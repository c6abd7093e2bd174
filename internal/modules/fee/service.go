// README: Fee query service; joins latest observations with the rule engine.
package fee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"courierfee/internal/modules/weather"
	"courierfee/internal/observability"
	"courierfee/internal/types"
)

// ErrNoObservationData means no observation was ever stored for the city.
var ErrNoObservationData = errors.New("no weather observation data for requested city")

// ObservationSource is the freshness lookup the service needs; satisfied by
// the weather store and by its Redis-cached wrapper.
type ObservationSource interface {
	LatestByCity(ctx context.Context, city weather.City) (*weather.Observation, error)
}

type Service struct {
	source  ObservationSource
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewService(source ObservationSource, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{source: source, logger: logger, metrics: metrics}
}

// Quote computes the delivery fee for the city and vehicle from the most
// recent stored observation. Returns ErrNoObservationData when the city has
// no observations and ErrVehicleForbidden when weather rules out the vehicle.
func (s *Service) Quote(ctx context.Context, city weather.City, vehicle VehicleType) (types.Fee, error) {
	s.logger.Debug("calculating fee", "city", city, "vehicle", vehicle)

	obs, err := s.source.LatestByCity(ctx, city)
	if errors.Is(err, weather.ErrNoObservation) {
		s.metrics.QuoteRequests.WithLabelValues("no_data").Inc()
		return 0, ErrNoObservationData
	}
	if err != nil {
		s.metrics.QuoteRequests.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("latest observation for %s: %w", city, err)
	}

	s.logger.Debug("latest observation",
		"city", city,
		"air_temperature", obs.AirTemperature,
		"wind_speed", obs.WindSpeed,
		"phenomenon", obs.Phenomenon,
	)

	total, err := Total(city, vehicle, obs.AirTemperature, obs.WindSpeed, obs.Phenomenon)
	if errors.Is(err, ErrVehicleForbidden) {
		s.metrics.QuoteRequests.WithLabelValues("forbidden").Inc()
		return 0, err
	}
	if err != nil {
		s.metrics.QuoteRequests.WithLabelValues("error").Inc()
		return 0, err
	}
	s.metrics.QuoteRequests.WithLabelValues("ok").Inc()
	return total, nil
}

// README: Pure fee rule engine: base fee plus weather extras.
package fee

import (
	"errors"
	"strings"

	"courierfee/internal/modules/weather"
	"courierfee/internal/types"
)

// ErrVehicleForbidden means current weather rules out the requested vehicle.
// A business outcome, not a defect; the HTTP layer maps it to 409.
var ErrVehicleForbidden = errors.New("usage of selected vehicle type is forbidden")

// baseFees holds the regional base fee for the full (city, vehicle) cross
// product. Every supported pair has an entry; TestBaseFeeTable covers the
// whole table.
var baseFees = map[weather.City]map[VehicleType]types.Fee{
	weather.CityTallinn: {
		VehicleCar:     types.Cents(400),
		VehicleScooter: types.Cents(350),
		VehicleBike:    types.Cents(300),
	},
	weather.CityTartu: {
		VehicleCar:     types.Cents(350),
		VehicleScooter: types.Cents(300),
		VehicleBike:    types.Cents(250),
	},
	weather.CityParnu: {
		VehicleCar:     types.Cents(300),
		VehicleScooter: types.Cents(250),
		VehicleBike:    types.Cents(200),
	},
}

// BaseFee returns the regional base fee for the city and vehicle pair.
func BaseFee(city weather.City, vehicle VehicleType) types.Fee {
	return baseFees[city][vehicle]
}

// TemperatureExtra charges scooters and bikes for cold air. Cars are
// unaffected by temperature.
func TemperatureExtra(vehicle VehicleType, airTemperature float64) types.Fee {
	if vehicle == VehicleCar {
		return 0
	}
	if airTemperature < -10 {
		return types.Cents(100)
	}
	if airTemperature <= 0 {
		return types.Cents(50)
	}
	return 0
}

// WindExtra charges bikes for strong wind and forbids them above 20 m/s.
// Cars and scooters are unaffected by wind.
func WindExtra(vehicle VehicleType, windSpeed float64) (types.Fee, error) {
	if vehicle != VehicleBike {
		return 0, nil
	}
	if windSpeed > 20 {
		return 0, ErrVehicleForbidden
	}
	if windSpeed >= 10 {
		return types.Cents(50), nil
	}
	return 0, nil
}

// PhenomenonExtra classifies the free-text phenomenon by case-insensitive
// substring. Forbidding phenomena (glaze, hail, thunder) are checked before
// the additive ones, so a text carrying both kinds forbids the vehicle.
// Cars are unaffected by phenomena.
func PhenomenonExtra(vehicle VehicleType, phenomenon string) (types.Fee, error) {
	if vehicle == VehicleCar {
		return 0, nil
	}
	p := strings.ToLower(phenomenon)

	if strings.Contains(p, "glaze") || strings.Contains(p, "hail") || strings.Contains(p, "thunder") {
		return 0, ErrVehicleForbidden
	}
	if strings.Contains(p, "snow") || strings.Contains(p, "sleet") {
		return types.Cents(100), nil
	}
	if strings.Contains(p, "rain") {
		return types.Cents(50), nil
	}
	return 0, nil
}

// Total composes the base fee with all weather extras. The first forbidding
// sub-rule short-circuits the whole computation.
func Total(city weather.City, vehicle VehicleType, airTemperature, windSpeed float64, phenomenon string) (types.Fee, error) {
	windExtra, err := WindExtra(vehicle, windSpeed)
	if err != nil {
		return 0, err
	}
	phenomenonExtra, err := PhenomenonExtra(vehicle, phenomenon)
	if err != nil {
		return 0, err
	}
	return BaseFee(city, vehicle).
		Add(TemperatureExtra(vehicle, airTemperature)).
		Add(windExtra).
		Add(phenomenonExtra), nil
}

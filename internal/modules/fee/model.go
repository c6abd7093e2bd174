// README: Vehicle type registry for fee rules.
package fee

import (
	"errors"
	"fmt"
	"strings"
)

type VehicleType string

const (
	VehicleCar     VehicleType = "car"
	VehicleScooter VehicleType = "scooter"
	VehicleBike    VehicleType = "bike"
)

var ErrUnknownVehicleType = errors.New("unknown vehicle type")

func AllVehicleTypes() []VehicleType {
	return []VehicleType{VehicleCar, VehicleScooter, VehicleBike}
}

// ParseVehicleType reads a case-insensitive vehicle token from the request
// layer.
func ParseVehicleType(token string) (VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "car":
		return VehicleCar, nil
	case "scooter":
		return VehicleScooter, nil
	case "bike":
		return VehicleBike, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVehicleType, token)
}

// README: City registry and observation record definitions.
package weather

import (
	"errors"
	"fmt"
	"strings"
)

type City string

const (
	CityTallinn City = "tallinn"
	CityTartu   City = "tartu"
	CityParnu   City = "pärnu"
)

var (
	ErrUnknownCity    = errors.New("unknown city")
	ErrUnknownStation = errors.New("station not in supported set")
)

// stationNames maps every supported city to the exact station name used by
// the national observations feed. The mapping is a bijection; AllCities and
// CityForStation both derive from it.
var stationNames = map[City]string{
	CityTallinn: "Tallinn-Harku",
	CityTartu:   "Tartu-Tõravere",
	CityParnu:   "Pärnu",
}

func AllCities() []City {
	return []City{CityTallinn, CityTartu, CityParnu}
}

func (c City) StationName() string {
	return stationNames[c]
}

// CityForStation resolves a feed station name to its city. Stations outside
// the supported set return ErrUnknownStation; the ingestion job skips them.
func CityForStation(name string) (City, error) {
	for city, station := range stationNames {
		if station == name {
			return city, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStation, name)
}

// ParseCity reads a case-insensitive city token from the request layer.
// "parnu" is accepted as an ASCII spelling of "pärnu".
func ParseCity(token string) (City, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "tallinn":
		return CityTallinn, nil
	case "tartu":
		return CityTartu, nil
	case "pärnu", "parnu":
		return CityParnu, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, token)
}

// Observation is one station reading from one ingestion batch. Rows are
// immutable once written; Timestamp is the feed-provided batch timestamp
// shared by every observation fetched in the same cycle.
type Observation struct {
	ID             int64
	City           City
	WMOCode        int64
	Phenomenon     string
	AirTemperature float64
	WindSpeed      float64
	Timestamp      int64
}

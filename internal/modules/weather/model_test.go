// README: City registry tests (station mapping, parsing).
package weather

import (
	"errors"
	"testing"
)

func TestStationMappingIsBijection(t *testing.T) {
	seen := map[string]City{}
	for _, city := range AllCities() {
		station := city.StationName()
		if station == "" {
			t.Fatalf("city %s has no station name", city)
		}
		if other, ok := seen[station]; ok {
			t.Fatalf("station %q mapped by both %s and %s", station, other, city)
		}
		seen[station] = city

		got, err := CityForStation(station)
		if err != nil {
			t.Errorf("CityForStation(%q): %v", station, err)
		}
		if got != city {
			t.Errorf("CityForStation(%q) = %s, want %s", station, got, city)
		}
	}
}

func TestCityForStationUnknown(t *testing.T) {
	_, err := CityForStation("Narva")
	if !errors.Is(err, ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
}

func TestParseCity(t *testing.T) {
	cases := []struct {
		in      string
		want    City
		wantErr bool
	}{
		{"tallinn", CityTallinn, false},
		{"TALLINN", CityTallinn, false},
		{"Tartu", CityTartu, false},
		{"pärnu", CityParnu, false},
		{"Parnu", CityParnu, false},
		{" tallinn ", CityTallinn, false},
		{"helsinki", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseCity(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownCity) {
				t.Errorf("ParseCity(%q): expected ErrUnknownCity, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCity(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCity(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

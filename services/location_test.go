package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{"valid", 20.6597, -103.3496, false},
		{"poles", 90, 180, false},
		{"latitude too high", 90.5, 0, true},
		{"latitude too low", -91, 0, true},
		{"longitude too high", 0, 181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocation(tt.lat, tt.lng)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLocation) {
					t.Errorf("expected ErrInvalidLocation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Lat() != tt.lat || p.Lon() != tt.lng {
				t.Errorf("point = %v, want lat %v lng %v", p, tt.lat, tt.lng)
			}
		})
	}
}

func TestLocationFeature(t *testing.T) {
	t.Run("house without location", func(t *testing.T) {
		_, err := LocationFeature(House{ID: "h1", Lat: 20, Lng: -103})
		if !errors.Is(err, ErrInvalidLocation) {
			t.Errorf("expected ErrInvalidLocation, got %v", err)
		}
	})

	t.Run("house with location", func(t *testing.T) {
		h := House{
			ID: "h1", Title: "Casa Jacarandas", Address: "Calle 1",
			Status: HouseStatusSold, Price: 100, Lat: 20.5, Lng: -103.25, HasLocation: true,
		}
		f, err := LocationFeature(h)
		if err != nil {
			t.Fatalf("LocationFeature() error = %v", err)
		}
		if f.Geometry != (orb.Point{-103.25, 20.5}) {
			t.Errorf("geometry = %v", f.Geometry)
		}
		if f.Properties["title"] != "Casa Jacarandas" || f.Properties["price"] != "SOLD" {
			t.Errorf("properties = %v", f.Properties)
		}

		raw, err := f.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		if !strings.Contains(string(raw), `"type":"Point"`) {
			t.Errorf("expected a Point feature, got %s", raw)
		}
	})
}

func TestMapsURL(t *testing.T) {
	got := MapsURL(20.5, -103.25)
	want := "https://www.google.com/maps/search/?api=1&query=20.500000,-103.250000"
	if got != want {
		t.Errorf("MapsURL() = %q, want %q", got, want)
	}
}

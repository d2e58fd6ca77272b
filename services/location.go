package services

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrInvalidLocation is returned for coordinates outside the valid ranges.
var ErrInvalidLocation = errors.New("invalid location")

// NewLocation validates a latitude/longitude pair and returns it as a point.
func NewLocation(lat, lng float64) (orb.Point, error) {
	if lat < -90 || lat > 90 {
		return orb.Point{}, fmt.Errorf("%w: latitude %.6f is out of range [-90, 90]", ErrInvalidLocation, lat)
	}
	if lng < -180 || lng > 180 {
		return orb.Point{}, fmt.Errorf("%w: longitude %.6f is out of range [-180, 180]", ErrInvalidLocation, lng)
	}
	return orb.Point{lng, lat}, nil
}

// LocationFeature builds the GeoJSON feature the map widget draws for a house.
func LocationFeature(h House) (*geojson.Feature, error) {
	if !h.HasLocation {
		return nil, ErrInvalidLocation
	}
	point, err := NewLocation(h.Lat, h.Lng)
	if err != nil {
		return nil, err
	}
	f := geojson.NewFeature(point)
	f.ID = h.ID
	f.Properties["title"] = h.Title
	f.Properties["address"] = h.Address
	f.Properties["status"] = h.Status
	f.Properties["price"] = PriceLabel(h)
	return f, nil
}

// MapsURL links to the Google Maps search page for a point.
func MapsURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%.6f,%.6f", lat, lng)
}

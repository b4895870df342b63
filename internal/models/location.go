package models

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound is returned by location stores when nothing has been reported for a key.
var ErrLocationNotFound = errors.New("no location data available")

// Location is a geographic point reported by a client or resolved from an address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinates fall inside WGS84 bounds.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: fmt.Sprintf("invalid latitude: %g", l.Latitude)}
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: fmt.Sprintf("invalid longitude: %g", l.Longitude)}
	}
	return nil
}

// ValidationError reports a client supplied value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

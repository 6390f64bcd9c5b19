package geoapify

import (
	"errors"
	"strconv"
)

var (
	// ErrAPIKeyIsRequired is returned if you are trying to build a
	// client without an API key. Geoapify does not serve anonymous
	// requests.
	ErrAPIKeyIsRequired = errors.New("api key is required")

	// ErrLocationIsRequired is returned by Geocode if a location
	// string is empty or blank.
	ErrLocationIsRequired = errors.New("location is required")

	// ErrLocationIsNotAnAddress is returned by Geocode if a location
	// string has no letters at all: bare postal codes or a coordinate
	// pair passed to the wrong method.
	ErrLocationIsNotAnAddress = errors.New("location does not look like an address")

	// ErrCoordinatesAreRequired is returned by ReverseGeocode if
	// either latitude or longitude is not set.
	ErrCoordinatesAreRequired = errors.New("both lat and lon are required")

	// ErrCoordinatesAreOutOfRange is returned by ReverseGeocode if
	// latitude is outside of [-90, 90] or longitude is outside of
	// [-180, 180].
	ErrCoordinatesAreOutOfRange = errors.New("lat or lon is out of range")
)

// ServiceError describes a failure of the Geoapify service itself: an
// HTTP error status, an unreachable host or a body which could not be
// decoded. It is distinct from the Err* sentinels which indicate a
// mistake on the caller side.
type ServiceError struct {
	// Operation is "geocode" or "reverse_geocode".
	Operation string

	// StatusCode is the HTTP status of the failed response. It is 0
	// if no response was received at all.
	StatusCode int

	// Err is an underlying error.
	Err error
}

func (s *ServiceError) Error() string {
	if s == nil {
		return ""
	}

	message := s.Operation + " has failed"

	if s.StatusCode != 0 {
		message += " with status code " + strconv.Itoa(s.StatusCode)
	}

	if s.Err != nil {
		message += ": " + s.Err.Error()
	}

	return message
}

func (s *ServiceError) Unwrap() error {
	if s == nil {
		return nil
	}

	return s.Err
}

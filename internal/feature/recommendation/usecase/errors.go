// Package usecase implements the business logic for the recommendation feature.
package usecase

import "errors"

// ErrInvalidRequest is returned when event, weather or time_of_day is not a known value.
var ErrInvalidRequest = errors.New("invalid recommendation request")

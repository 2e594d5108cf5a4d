// Package usecase implements the business logic for the clothing feature.
package usecase

import "errors"

var (
	// ErrInvalidMetadata is returned when clothing_type, occasion or season is not a known value.
	ErrInvalidMetadata = errors.New("invalid clothing metadata")

	// ErrImageUpload is returned when the image could not be written to the image store.
	ErrImageUpload = errors.New("failed to upload image")
)

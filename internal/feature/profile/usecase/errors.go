// Package usecase implements the business logic for the profile feature.
package usecase

import "errors"

var (
	// ErrProfileNotFound is returned when no photo has been analyzed yet.
	ErrProfileNotFound = errors.New("no user profile found, please upload a photo first")

	// ErrImageUpload is returned when the photo could not be written to the image store.
	ErrImageUpload = errors.New("failed to upload photo")
)

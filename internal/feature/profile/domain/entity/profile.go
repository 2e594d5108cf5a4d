// Package entity defines the domain models for the profile feature.
package entity

import "time"

// SkinTone is the lightness class of the user's skin.
type SkinTone string

const (
	ToneFair   SkinTone = "FAIR"
	ToneMedium SkinTone = "MEDIUM"
	ToneDark   SkinTone = "DARK"
)

// SkinUndertone is the warm/cool class of the user's skin hue.
type SkinUndertone string

const (
	UndertoneWarm    SkinUndertone = "WARM"
	UndertoneCool    SkinUndertone = "COOL"
	UndertoneNeutral SkinUndertone = "NEUTRAL"
)

// SkinProfile is the single stored analysis of the owner's face photo.
// Uploading a new photo overwrites it.
type SkinProfile struct {
	ID            uint
	PhotoURL      string
	SkinTone      SkinTone
	SkinUndertone SkinUndertone
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

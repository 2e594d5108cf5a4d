// Package scoring ranks wardrobe items for an event, weather and time of day.
//
// Every item is scored by six independent rules evaluated in a fixed order.
// The score is the sum of the rule points and the reasons are collected in rule
// order. Ranking keeps the input order for equal scores.
package scoring

import (
	"errors"
	"strings"

	profile "wardrobe_backend/internal/feature/profile/domain/entity"
)

// Event is the kind of occasion the outfit is for.
type Event string

const (
	EventOffice  Event = "OFFICE"
	EventCasual  Event = "CASUAL"
	EventParty   Event = "PARTY"
	EventWedding Event = "WEDDING"
)

// Weather is the expected weather.
type Weather string

const (
	WeatherHot   Weather = "HOT"
	WeatherCold  Weather = "COLD"
	WeatherRainy Weather = "RAINY"
)

// TimeOfDay is when the outfit will be worn.
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "DAY"
	TimeNight TimeOfDay = "NIGHT"
)

// Context is one recommendation request. Tone and Undertone are nil when no
// skin profile exists.
type Context struct {
	Event     Event
	Weather   Weather
	TimeOfDay TimeOfDay
	Tone      *profile.SkinTone
	Undertone *profile.SkinUndertone
}

// ErrRecommendationInput is the error kind for requests that cannot be ranked.
var ErrRecommendationInput = errors.New("invalid recommendation input")

// InputError carries a message that can be shown to the user as is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// Is makes every InputError match ErrRecommendationInput.
func (e *InputError) Is(target error) bool { return target == ErrRecommendationInput }

// ErrEmptyWardrobe is returned by Rank when there is nothing to rank.
var ErrEmptyWardrobe error = &InputError{Message: "no clothing items found, please upload some clothes first"}

// ParseEvent normalizes s and reports whether it is a known event.
func ParseEvent(s string) (Event, bool) {
	return parseEnum(s, EventOffice, EventCasual, EventParty, EventWedding)
}

// ParseWeather normalizes s and reports whether it is a known weather.
func ParseWeather(s string) (Weather, bool) {
	return parseEnum(s, WeatherHot, WeatherCold, WeatherRainy)
}

// ParseTimeOfDay normalizes s and reports whether it is a known time of day.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	return parseEnum(s, TimeDay, TimeNight)
}

func parseEnum[T ~string](s string, allowed ...T) (T, bool) {
	v := T(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range allowed {
		if a == v {
			return v, true
		}
	}
	return "", false
}

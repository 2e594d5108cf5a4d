// Package entity defines the domain models for the clothing feature.
package entity

import (
	"strings"
	"time"
)

// ClothingType is the kind of garment, supplied by the uploader.
type ClothingType string

const (
	ClothingShirt    ClothingType = "SHIRT"
	ClothingTShirt   ClothingType = "TSHIRT"
	ClothingJeans    ClothingType = "JEANS"
	ClothingTrousers ClothingType = "TROUSERS"
	ClothingKurta    ClothingType = "KURTA"
	ClothingJacket   ClothingType = "JACKET"
	ClothingShorts   ClothingType = "SHORTS"
	ClothingDress    ClothingType = "DRESS"
	ClothingBlazer   ClothingType = "BLAZER"
	ClothingHoodie   ClothingType = "HOODIE"
)

// Occasion is the kind of event a garment is meant for.
type Occasion string

const (
	OccasionCasual      Occasion = "CASUAL"
	OccasionOffice      Occasion = "OFFICE"
	OccasionParty       Occasion = "PARTY"
	OccasionWedding     Occasion = "WEDDING"
	OccasionTraditional Occasion = "TRADITIONAL"
)

// Season is the weather a garment is meant for. SeasonAll marks all-season clothing.
type Season string

const (
	SeasonSummer Season = "SUMMER"
	SeasonWinter Season = "WINTER"
	SeasonAll    Season = "ALL"
)

var (
	clothingTypes = []ClothingType{
		ClothingShirt, ClothingTShirt, ClothingJeans, ClothingTrousers, ClothingKurta,
		ClothingJacket, ClothingShorts, ClothingDress, ClothingBlazer, ClothingHoodie,
	}
	occasions = []Occasion{OccasionCasual, OccasionOffice, OccasionParty, OccasionWedding, OccasionTraditional}
	seasons   = []Season{SeasonSummer, SeasonWinter, SeasonAll}
)

// ClothingItem is one garment in the wardrobe.
type ClothingItem struct {
	ID             uint
	ImageURL       string
	DominantColor  *string // nil until the image has been analyzed
	SecondaryColor *string // nil when no significant second color was found
	ClothingType   ClothingType
	Occasion       Occasion
	Season         Season
	CreatedAt      time.Time
}

// ParseClothingType normalizes s and reports whether it is a known clothing type.
func ParseClothingType(s string) (ClothingType, bool) {
	return parseEnum(s, clothingTypes)
}

// ParseOccasion normalizes s and reports whether it is a known occasion.
func ParseOccasion(s string) (Occasion, bool) {
	return parseEnum(s, occasions)
}

// ParseSeason normalizes s and reports whether it is a known season.
func ParseSeason(s string) (Season, bool) {
	return parseEnum(s, seasons)
}

func parseEnum[T ~string](s string, allowed []T) (T, bool) {
	v := T(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range allowed {
		if a == v {
			return v, true
		}
	}
	return "", false
}

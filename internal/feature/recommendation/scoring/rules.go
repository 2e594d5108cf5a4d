package scoring

import (
	"fmt"
	"strings"

	clothing "wardrobe_backend/internal/feature/clothing/domain/entity"
	profile "wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/shared/palette"
)

// Rule weights.
const (
	EventMatchScore         = 3
	WeatherColorMatchScore  = 2
	SeasonWeatherMatchScore = 2
	AllSeasonScore          = 1
	SkinToneColorMatchScore = 2
	UndertoneColorScore     = 2
	TimeOfDayMatchScore     = 1
)

// rule scores one item. An empty reason means the rule did not apply.
type rule func(reg *palette.Registry, item *clothing.ClothingItem, c Context) (int, string)

// rules in evaluation order; reasons are reported in this order.
var rules = []rule{
	eventMatch,
	weatherColor,
	seasonWeather,
	skinToneColor,
	undertoneColor,
	timeOfDay,
}

func eventMatch(_ *palette.Registry, item *clothing.ClothingItem, c Context) (int, string) {
	if string(item.Occasion) == string(c.Event) {
		return EventMatchScore, fmt.Sprintf("Matches %s occasion", c.Event)
	}
	return 0, ""
}

func weatherColor(reg *palette.Registry, item *clothing.ClothingItem, c Context) (int, string) {
	if item.DominantColor == nil {
		return 0, ""
	}
	color := *item.DominantColor
	switch {
	case c.Weather == WeatherHot && reg.InGroup(palette.GroupLight, color):
		return WeatherColorMatchScore, "Light color suitable for hot weather"
	case c.Weather == WeatherCold && reg.InGroup(palette.GroupDark, color):
		return WeatherColorMatchScore, "Dark color suitable for cold weather"
	}
	return 0, ""
}

func seasonWeather(_ *palette.Registry, item *clothing.ClothingItem, c Context) (int, string) {
	switch {
	case item.Season == clothing.SeasonAll:
		return AllSeasonScore, "All-season clothing"
	case item.Season == clothing.SeasonSummer && c.Weather == WeatherHot:
		return SeasonWeatherMatchScore, "Summer clothing for hot weather"
	case item.Season == clothing.SeasonWinter && c.Weather == WeatherCold:
		return SeasonWeatherMatchScore, "Winter clothing for cold weather"
	}
	return 0, ""
}

func skinToneColor(reg *palette.Registry, item *clothing.ClothingItem, c Context) (int, string) {
	if c.Tone == nil || item.DominantColor == nil {
		return 0, ""
	}
	color := *item.DominantColor
	switch {
	case *c.Tone == profile.ToneDark && reg.InGroup(palette.GroupBright, color):
		return SkinToneColorMatchScore, color + " complements dark skin tone"
	case *c.Tone == profile.ToneFair && reg.InGroup(palette.GroupDark, color):
		return SkinToneColorMatchScore, color + " complements fair skin tone"
	}
	return 0, ""
}

func undertoneColor(reg *palette.Registry, item *clothing.ClothingItem, c Context) (int, string) {
	if c.Undertone == nil || item.DominantColor == nil {
		return 0, ""
	}
	color := *item.DominantColor
	var group palette.Group
	verb := "harmonizes with"
	switch *c.Undertone {
	case profile.UndertoneWarm:
		group = palette.GroupWarm
	case profile.UndertoneCool:
		group = palette.GroupCool
	case profile.UndertoneNeutral:
		group, verb = palette.GroupNeutral, "works with"
	default:
		return 0, ""
	}
	if !reg.InGroup(group, color) {
		return 0, ""
	}
	return UndertoneColorScore, fmt.Sprintf("%s %s %s undertone", color, verb, strings.ToLower(string(*c.Undertone)))
}

func timeOfDay(reg *palette.Registry, item *clothing.ClothingItem, c Context) (int, string) {
	if item.DominantColor == nil {
		return 0, ""
	}
	if c.TimeOfDay == TimeNight && reg.InGroup(palette.GroupDark, *item.DominantColor) {
		return TimeOfDayMatchScore, "Dark color suitable for nighttime"
	}
	return 0, ""
}

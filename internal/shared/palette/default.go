package palette

// Clothing color labels.
const (
	Black    = "BLACK"
	White    = "WHITE"
	Red      = "RED"
	Blue     = "BLUE"
	Green    = "GREEN"
	Yellow   = "YELLOW"
	Orange   = "ORANGE"
	Pink     = "PINK"
	Purple   = "PURPLE"
	Brown    = "BROWN"
	Grey     = "GREY"
	Beige    = "BEIGE"
	Navy     = "NAVY"
	Maroon   = "MAROON"
	Olive    = "OLIVE"
	Teal     = "TEAL"
	Cream    = "CREAM"
	Lavender = "LAVENDER"
)

var defaultColors = []NamedColor{
	{Black, RGB{0, 0, 0}},
	{White, RGB{255, 255, 255}},
	{Red, RGB{255, 0, 0}},
	{Blue, RGB{0, 0, 255}},
	{Green, RGB{0, 128, 0}},
	{Yellow, RGB{255, 255, 0}},
	{Orange, RGB{255, 165, 0}},
	{Pink, RGB{255, 192, 203}},
	{Purple, RGB{128, 0, 128}},
	{Brown, RGB{139, 69, 19}},
	{Grey, RGB{128, 128, 128}},
	{Beige, RGB{245, 245, 220}},
	{Navy, RGB{0, 0, 128}},
	{Maroon, RGB{128, 0, 0}},
	{Olive, RGB{128, 128, 0}},
	{Teal, RGB{0, 128, 128}},
	{Cream, RGB{255, 253, 208}},
	{Lavender, RGB{230, 230, 250}},
}

var (
	warmPalette = []string{Red, Orange, Yellow, Brown, Beige, Cream, Olive, Maroon}
	coolPalette = []string{Blue, Navy, Purple, Pink, Lavender, Teal, Grey, White}
)

var defaultRegistry = MustNewRegistry(defaultColors, map[Group][]string{
	GroupWarm:    warmPalette,
	GroupCool:    coolPalette,
	GroupNeutral: append(append([]string{}, warmPalette...), coolPalette...),
	GroupLight:   {White, Beige, Cream, Pink, Lavender, Yellow},
	GroupBright:  {Red, Orange, Yellow, Pink, Purple, Teal, White, Cream},
	GroupDark:    {Black, Navy, Maroon, Brown},
})

// Default returns the built-in clothing color registry.
// The returned registry is shared and must not be modified.
func Default() *Registry {
	return defaultRegistry
}

// Package palette holds the reference color data used to label clothing colors
// and to group labels into palettes for recommendation scoring.
package palette

import "fmt"

// RGB is an 8-bit red/green/blue triple.
type RGB struct {
	R, G, B uint8
}

// NamedColor is a color label with its reference RGB value.
type NamedColor struct {
	Name string
	RGB  RGB
}

// Group identifies a named set of color labels.
type Group string

const (
	GroupWarm    Group = "warm"
	GroupCool    Group = "cool"
	GroupNeutral Group = "neutral"
	GroupLight   Group = "light"
	GroupBright  Group = "bright"
	GroupDark    Group = "dark"
)

// Registry is an immutable set of named colors and color groups.
// Colors keep their declaration order, which is also the tie-break order
// used by Classify.
type Registry struct {
	colors []NamedColor
	index  map[string]int
	groups map[Group]map[string]struct{}
}

// NewRegistry builds a registry from colors in declaration order and the given groups.
// Every group member must name a declared color and color names must be unique.
func NewRegistry(colors []NamedColor, groups map[Group][]string) (*Registry, error) {
	r := &Registry{
		colors: make([]NamedColor, 0, len(colors)),
		index:  make(map[string]int, len(colors)),
		groups: make(map[Group]map[string]struct{}, len(groups)),
	}
	for _, c := range colors {
		if _, dup := r.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate color %q", c.Name)
		}
		r.index[c.Name] = len(r.colors)
		r.colors = append(r.colors, c)
	}
	for g, names := range groups {
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			if _, ok := r.index[n]; !ok {
				return nil, fmt.Errorf("group %s references unknown color %q", g, n)
			}
			set[n] = struct{}{}
		}
		r.groups[g] = set
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid data.
func MustNewRegistry(colors []NamedColor, groups map[Group][]string) *Registry {
	r, err := NewRegistry(colors, groups)
	if err != nil {
		panic(err)
	}
	return r
}

// Colors returns a copy of the registered colors in declaration order.
func (r *Registry) Colors() []NamedColor {
	out := make([]NamedColor, len(r.colors))
	copy(out, r.colors)
	return out
}

// Lookup returns the reference RGB for a color name.
func (r *Registry) Lookup(name string) (RGB, bool) {
	i, ok := r.index[name]
	if !ok {
		return RGB{}, false
	}
	return r.colors[i].RGB, true
}

// InGroup reports whether the named color belongs to group g.
func (r *Registry) InGroup(g Group, name string) bool {
	_, ok := r.groups[g][name]
	return ok
}

// Len returns the number of registered colors.
func (r *Registry) Len() int {
	return len(r.colors)
}

package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ExactReferenceColors(t *testing.T) {
	t.Parallel()

	reg := Default()
	for _, c := range reg.Colors() {
		t.Run(c.Name, func(t *testing.T) {
			name, dist := reg.Classify([3]float64{float64(c.RGB.R), float64(c.RGB.G), float64(c.RGB.B)})
			assert.Equal(t, c.Name, name)
			assert.Zero(t, dist)
		})
	}
}

func TestClassify_NearestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [3]float64
		want string
	}{
		{"near black", [3]float64{10, 12, 8}, Black},
		{"dark blue is navy", [3]float64{5, 10, 120}, Navy},
		{"off white", [3]float64{250, 250, 250}, White},
		{"dull red is maroon", [3]float64{140, 10, 10}, Maroon},
		{"fractional centroid", [3]float64{127.6, 127.2, 128.4}, Grey},
	}

	reg := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := reg.Classify(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_TieGoesToFirstDeclared(t *testing.T) {
	t.Parallel()

	reg := MustNewRegistry([]NamedColor{
		{"LOW", RGB{0, 0, 0}},
		{"HIGH", RGB{100, 0, 0}},
	}, nil)

	got, dist := reg.Classify([3]float64{50, 0, 0})

	assert.Equal(t, "LOW", got)
	assert.InDelta(t, 50.0, dist, 1e-9)
}

func TestClassify_EmptyRegistry(t *testing.T) {
	t.Parallel()

	reg := MustNewRegistry(nil, nil)

	assert.Equal(t, Unknown, reg.ClassifyRGB(RGB{1, 2, 3}))
}

func TestNewRegistry_Validation(t *testing.T) {
	t.Parallel()

	t.Run("duplicate color", func(t *testing.T) {
		_, err := NewRegistry([]NamedColor{{"A", RGB{}}, {"A", RGB{1, 1, 1}}}, nil)
		assert.Error(t, err)
	})

	t.Run("unknown group member", func(t *testing.T) {
		_, err := NewRegistry([]NamedColor{{"A", RGB{}}}, map[Group][]string{GroupDark: {"B"}})
		assert.Error(t, err)
	})
}

func TestDefault_Groups(t *testing.T) {
	t.Parallel()

	reg := Default()
	require.Equal(t, 18, reg.Len())

	assert.True(t, reg.InGroup(GroupDark, Navy))
	assert.True(t, reg.InGroup(GroupLight, Cream))
	assert.True(t, reg.InGroup(GroupBright, Teal))
	assert.False(t, reg.InGroup(GroupDark, White))
	assert.False(t, reg.InGroup(GroupWarm, Black))

	// neutral is the union of warm and cool
	for _, c := range reg.Colors() {
		want := reg.InGroup(GroupWarm, c.Name) || reg.InGroup(GroupCool, c.Name)
		assert.Equal(t, want, reg.InGroup(GroupNeutral, c.Name), c.Name)
	}

	rgb, ok := reg.Lookup(Teal)
	assert.True(t, ok)
	assert.Equal(t, RGB{0, 128, 128}, rgb)
	_, ok = reg.Lookup("MAGENTA")
	assert.False(t, ok)
}

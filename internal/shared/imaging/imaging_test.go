package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid png", func(t *testing.T) {
		data := encodePNG(t, solid(4, 3, color.RGBA{10, 20, 30, 255}))

		img, err := Decode(data)

		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	})

	t.Run("garbage bytes", func(t *testing.T) {
		_, err := Decode([]byte("not an image"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrImageProcessing)
		assert.Contains(t, UserMessage(err), "could not decode")
	})
}

func TestResize(t *testing.T) {
	t.Parallel()

	out := Resize(solid(50, 20, color.RGBA{200, 100, 50, 255}), ClothingResizeWidth, ClothingResizeHeight)

	assert.Equal(t, image.Rect(0, 0, 300, 300), out.Bounds())
	got := out.RGBAAt(150, 150)
	assert.InDelta(t, 200, int(got.R), 1)
	assert.InDelta(t, 100, int(got.G), 1)
	assert.InDelta(t, 50, int(got.B), 1)
}

func TestResize_ShrinkKeepsThinStripes(t *testing.T) {
	t.Parallel()

	// white with a black column every 10th pixel, 10% coverage
	img := solid(3000, 3000, color.RGBA{255, 255, 255, 255})
	for y := 0; y < 3000; y++ {
		for x := 0; x < 3000; x += 10 {
			img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}

	out := Resize(img, ClothingResizeWidth, ClothingResizeHeight)

	var sum float64
	for i := 0; i < len(out.Pix); i += 4 {
		sum += float64(out.Pix[i])
	}
	mean := sum / float64(len(out.Pix)/4)
	assert.InDelta(t, 229.5, mean, 2.5)
}

func TestFromImage_RGBOrder(t *testing.T) {
	t.Parallel()

	img := solid(2, 2, color.RGBA{1, 2, 3, 255})
	img.SetRGBA(1, 1, color.RGBA{7, 8, 9, 255})

	p := FromImage(img)

	require.Equal(t, 4, p.Len())
	assert.Equal(t, OrderRGB, p.Order)
	r, g, b := p.RGBAt(3)
	assert.Equal(t, []uint8{7, 8, 9}, []uint8{r, g, b})
}

func TestFromImage_OffsetBounds(t *testing.T) {
	t.Parallel()

	img := solid(4, 4, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(2, 2, color.RGBA{9, 9, 9, 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4))

	p := FromImage(sub)

	require.Equal(t, 2, p.Width)
	r, _, _ := p.RGBAt(0)
	assert.Equal(t, uint8(9), r)
}

func TestFromBGR(t *testing.T) {
	t.Parallel()

	p, err := FromBGR(1, 1, []uint8{30, 20, 10})
	require.NoError(t, err)

	r, g, b := p.RGBAt(0)
	assert.Equal(t, []uint8{10, 20, 30}, []uint8{r, g, b})

	rgb := p.RGB()
	assert.Equal(t, OrderRGB, rgb.Order)
	assert.Equal(t, []uint8{10, 20, 30}, rgb.Data)

	_, err = FromBGR(2, 2, []uint8{1, 2, 3})
	assert.True(t, errors.Is(err, ErrImageProcessing))
}

func TestCrop(t *testing.T) {
	t.Parallel()

	img := solid(10, 10, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(5, 5, color.RGBA{255, 255, 255, 255})
	p := FromImage(img)

	t.Run("inner region", func(t *testing.T) {
		c, err := p.Crop(image.Rect(5, 5, 7, 8))
		require.NoError(t, err)
		assert.Equal(t, 2, c.Width)
		assert.Equal(t, 3, c.Height)
		r, _, _ := c.RGBAt(0)
		assert.Equal(t, uint8(255), r)
	})

	t.Run("clipped to bounds", func(t *testing.T) {
		c, err := p.Crop(image.Rect(8, 8, 20, 20))
		require.NoError(t, err)
		assert.Equal(t, 2, c.Width)
		assert.Equal(t, 2, c.Height)
	})

	t.Run("empty region", func(t *testing.T) {
		_, err := p.Crop(image.Rect(20, 20, 30, 30))
		assert.ErrorIs(t, err, ErrImageProcessing)
	})
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, ".jpg"},
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), ".png"},
		{"gif", []byte("GIF89a..."), ".gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), ".webp"},
		{"unknown", []byte("????"), ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionFor(tt.data))
		})
	}
	assert.Equal(t, "image/png", ContentTypeFor(".png"))
	assert.Equal(t, "image/jpeg", ContentTypeFor(".jpg"))
}

func TestCheckUpload(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, CheckUpload(nil), ErrEmptyUpload)
	assert.ErrorIs(t, CheckUpload(make([]byte, MaxUploadBytes+1)), ErrUploadTooLarge)
	assert.NoError(t, CheckUpload(make([]byte, MaxUploadBytes)))
	assert.NoError(t, CheckUpload([]byte{1}))
}

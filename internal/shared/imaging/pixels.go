package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ChannelOrder is the byte order of the three color channels in a Pixels buffer.
type ChannelOrder int

const (
	OrderRGB ChannelOrder = iota
	OrderBGR
)

// Pixels is a row-major 8-bit, 3-channel pixel grid.
type Pixels struct {
	Width  int
	Height int
	Order  ChannelOrder
	Data   []uint8 // len(Data) == Width*Height*3
}

// FromImage copies img into an RGB-ordered pixel grid. Alpha is dropped.
func FromImage(img image.Image) *Pixels {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	data := make([]uint8, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < w; x++ {
			data = append(data, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return &Pixels{Width: w, Height: h, Order: OrderRGB, Data: data}
}

// FromBGR wraps a raw BGR buffer, as produced by OpenCV, without copying.
func FromBGR(width, height int, data []uint8) (*Pixels, error) {
	if width <= 0 || height <= 0 || len(data) != width*height*3 {
		return nil, NewProcessingError("could not read the image pixels",
			fmt.Errorf("buffer of %d bytes does not match %dx%dx3", len(data), width, height))
	}
	return &Pixels{Width: width, Height: height, Order: OrderBGR, Data: data}, nil
}

// Len returns the number of pixels.
func (p *Pixels) Len() int {
	return p.Width * p.Height
}

// Empty reports whether the grid holds no pixels.
func (p *Pixels) Empty() bool {
	return p == nil || p.Len() == 0
}

// RGBAt returns the pixel at index i (row-major) in RGB order.
func (p *Pixels) RGBAt(i int) (r, g, b uint8) {
	o := i * 3
	if p.Order == OrderBGR {
		return p.Data[o+2], p.Data[o+1], p.Data[o]
	}
	return p.Data[o], p.Data[o+1], p.Data[o+2]
}

// RGB returns p in RGB order, converting a copy when the native order differs.
func (p *Pixels) RGB() *Pixels {
	if p.Order == OrderRGB {
		return p
	}
	out := &Pixels{Width: p.Width, Height: p.Height, Order: OrderRGB, Data: make([]uint8, len(p.Data))}
	for i := 0; i < p.Len(); i++ {
		r, g, b := p.RGBAt(i)
		out.Data[i*3], out.Data[i*3+1], out.Data[i*3+2] = r, g, b
	}
	return out
}

// Bounds returns the rectangle covering the whole grid.
func (p *Pixels) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// Crop copies the sub-rectangle r, keeping the channel order.
func (p *Pixels) Crop(r image.Rectangle) (*Pixels, error) {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return nil, NewProcessingError("the selected image region is empty", nil)
	}
	w, h := r.Dx(), r.Dy()
	data := make([]uint8, 0, w*h*3)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := (y*p.Width + r.Min.X) * 3
		data = append(data, p.Data[start:start+w*3]...)
	}
	return &Pixels{Width: w, Height: h, Order: p.Order, Data: data}, nil
}

// Image converts the grid back to an *image.RGBA.
func (p *Pixels) Image() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	for i := 0; i < p.Len(); i++ {
		r, g, b := p.RGBAt(i)
		img.SetRGBA(i%p.Width, i/p.Width, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return img
}

package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// ClothingResizeWidth and ClothingResizeHeight are the dimensions clothing
	// images are scaled to before color clustering.
	ClothingResizeWidth  = 300
	ClothingResizeHeight = 300
)

// Decode decodes JPEG, PNG, GIF or WebP bytes.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, NewProcessingError(
			"could not decode the uploaded image, please ensure it is a valid JPEG or PNG file", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, NewProcessingError("the uploaded image has no pixels", nil)
	}
	return img, nil
}

// Resize scales img to exactly width x height. When shrinking, every source
// pixel contributes to the output.
func Resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ExtensionFor returns a file extension for the image bytes based on their
// magic number, defaulting to ".jpg".
func ExtensionFor(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return ".jpg"
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return ".png"
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return ".gif"
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return ".webp"
	default:
		return ".jpg"
	}
}

// ContentTypeFor maps an extension returned by ExtensionFor to a MIME type.
func ContentTypeFor(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// MaxUploadBytes is the largest accepted upload.
const MaxUploadBytes = 10 << 20

var (
	// ErrEmptyUpload is returned for a zero-byte upload.
	ErrEmptyUpload = errors.New("the uploaded file is empty")
	// ErrUploadTooLarge is returned for uploads over MaxUploadBytes.
	ErrUploadTooLarge = fmt.Errorf("the uploaded file exceeds %d MiB", MaxUploadBytes>>20)
)

// CheckUpload rejects empty and oversized uploads before they are decoded or stored.
func CheckUpload(data []byte) error {
	switch {
	case len(data) == 0:
		return ErrEmptyUpload
	case len(data) > MaxUploadBytes:
		return ErrUploadTooLarge
	}
	return nil
}

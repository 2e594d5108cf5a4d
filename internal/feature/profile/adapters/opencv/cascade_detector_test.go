package opencv

import (
	"context"
	"image"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe_backend/internal/shared/imaging"
)

func TestNewCascadeDetector_MissingModel(t *testing.T) {
	_, err := NewCascadeDetector("/nonexistent/cascade.xml")

	assert.Error(t, err)
}

func TestCascadeDetector_BlankImage(t *testing.T) {
	path := os.Getenv("FACE_CASCADE_PATH")
	if path == "" {
		t.Skip("FACE_CASCADE_PATH is not set")
	}
	d, err := NewCascadeDetector(path)
	require.NoError(t, err)
	defer d.Close()

	px := imaging.FromImage(image.NewRGBA(image.Rect(0, 0, 320, 240)))

	faces, err := d.DetectFaces(context.Background(), px)

	require.NoError(t, err)
	assert.Empty(t, faces)
}

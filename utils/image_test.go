package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResizeImageDownscalesWideImages(t *testing.T) {
	data := encodePNG(t, 1000, 400)

	out, err := ResizeImage(data)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, MaxImageWidth, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy(), "aspect ratio is preserved")
}

func TestResizeImageKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 300, 200)

	out, err := ResizeImage(data)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestResizeImageRejectsGarbage(t *testing.T) {
	_, err := ResizeImage([]byte("not an image"))
	assert.Error(t, err)
}

func TestImageDataURI(t *testing.T) {
	data := encodePNG(t, 600, 300)

	uri, err := ImageDataURI(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

package wizard

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	body, found := strings.CutPrefix(uri, "data:image/jpeg;base64,")
	require.True(t, found, "expected a JPEG data URI, got %q", uri[:min(len(uri), 40)])
	raw, err := base64.StdEncoding.DecodeString(body)
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img
}

func TestEncodePhotoDownsizesLandscape(t *testing.T) {
	uri, err := EncodePhoto(pngFixture(t, 1600, 900))
	require.NoError(t, err)

	img := decodeDataURI(t, uri)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestEncodePhotoDownsizesPortrait(t *testing.T) {
	uri, err := EncodePhoto(pngFixture(t, 600, 1200))
	require.NoError(t, err)

	img := decodeDataURI(t, uri)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestEncodePhotoKeepsSmallImages(t *testing.T) {
	uri, err := EncodePhoto(pngFixture(t, 300, 200))
	require.NoError(t, err)

	img := decodeDataURI(t, uri)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestEncodePhotoRejectsGarbage(t *testing.T) {
	_, err := EncodePhoto(strings.NewReader("definitely not an image"))
	require.Error(t, err)
}

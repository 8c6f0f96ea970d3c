package wizard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

const (
	maxPhotoDimension = 800
	photoJPEGQuality  = 70
)

// EncodePhoto decodes an image, scales it so neither dimension exceeds
// 800px, re-encodes it as JPEG at quality 70 and wraps it in a data URI.
// This happens before transmission to keep request bodies small.
func EncodePhoto(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	img = downsize(img)

	var buf bytes.Buffer
	err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: photoJPEGQuality})
	if err != nil {
		return "", fmt.Errorf("encoding JPEG: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func downsize(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxPhotoDimension && height <= maxPhotoDimension {
		return img
	}

	if width > height {
		height = int(math.Round(float64(height) * maxPhotoDimension / float64(width)))
		width = maxPhotoDimension
	} else {
		width = int(math.Round(float64(width) * maxPhotoDimension / float64(height)))
		height = maxPhotoDimension
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

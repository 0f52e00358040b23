package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

const (
	// MaxImageWidth bounds uploaded menu images; larger images are
	// downscaled preserving aspect ratio.
	MaxImageWidth = 500

	jpegQuality = 70
)

// ResizeImage decodes an uploaded image, downscales it to MaxImageWidth when
// wider, flattens transparency onto white and re-encodes as JPEG.
func ResizeImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > MaxImageWidth {
		scale := float64(MaxImageWidth) / float64(width)
		width = MaxImageWidth
		height = int(float64(height) * scale)
		if height < 1 {
			height = 1
		}
	}

	// White background so transparent PNGs survive the JPEG conversion.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	scaleInto(dst, src)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return out.Bytes(), nil
}

// ImageDataURI resizes and wraps the image as an inline data URI, the form
// stored when no object storage is configured.
func ImageDataURI(data []byte) (string, error) {
	encoded, err := ResizeImage(data)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(encoded), nil
}

// scaleInto draws src over dst resampling to dst's bounds.
func scaleInto(dst *image.RGBA, src image.Image) {
	srcBounds := src.Bounds()
	dstBounds := dst.Bounds()
	sw := srcBounds.Dx()
	sh := srcBounds.Dy()
	dw := dstBounds.Dx()
	dh := dstBounds.Dy()
	for y := 0; y < dh; y++ {
		sy := srcBounds.Min.Y + y*sh/dh
		for x := 0; x < dw; x++ {
			sx := srcBounds.Min.X + x*sw/dw
			r, g, b, a := src.At(sx, sy).RGBA()
			// Fully transparent pixels keep the white fill.
			if a == 0 {
				continue
			}
			dst.Set(dstBounds.Min.X+x, dstBounds.Min.Y+y, color.RGBA64{
				R: uint16(r),
				G: uint16(g),
				B: uint16(b),
				A: uint16(a),
			})
		}
	}
}

// Package images prepares picture slide images: format detection, SVG
// rasterization, resizing and re-encoding.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	// imaging registers the other raster decoders, webp has to be done here
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// IsSVG sniffs for an SVG document. filetype only knows binary formats, SVG
// is plain XML so we look at the head of the data ourselves.
func IsSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// DecodePicture decodes raster or SVG image data. SVG input is rasterized
// into the targetW x targetH box; for raster input the target size is
// ignored and resizing is left to Fit.
func DecodePicture(data []byte, targetW, targetH int) (image.Image, error) {
	if IsSVG(data) {
		img, err := RasterizeSVGToImage(data, targetW, targetH)
		if err != nil {
			return nil, fmt.Errorf("unable to rasterize SVG: %w", err)
		}
		return img, nil
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, ErrUnsupportedImage
	}
	switch kind {
	case matchers.TypeJpeg, matchers.TypePng, matchers.TypeGif, matchers.TypeBmp, matchers.TypeTiff, matchers.TypeWebp:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, kind.Extension)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", kind.Extension, err)
	}
	return img, nil
}

// Fit sizes an image into the maxW x maxH box. When stretch is false the
// aspect ratio is kept and images already inside the box are left alone;
// when true the image is forced to exactly maxW x maxH.
func Fit(img image.Image, maxW, maxH int, stretch bool) image.Image {
	if maxW <= 0 || maxH <= 0 {
		return img
	}
	if stretch {
		return imaging.Resize(img, maxW, maxH, imaging.Lanczos)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxW && bounds.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// EncodeJPEG encodes an image as JPEG with the given quality (1-100).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("unable to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

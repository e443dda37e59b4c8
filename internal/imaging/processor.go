// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging provides the raster operations used to build ad creatives:
// decoding uploaded photos, filling frames and drawing scaled bitmap text.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp" // WebP decoder
)

// Glyph metrics of the bitmap face.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// Open reads and decodes the image at path.
func Open(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Decode(data)
}

// Decode decodes JPEG, PNG, GIF or WebP data and applies its EXIF orientation.
func Decode(data []byte) (image.Image, error) {
	if detectFormat(data) == "" {
		return nil, fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return applyOrientation(img, readExifOrientation(bytes.NewReader(data))), nil
}

// NewCanvas returns a w×h image filled with bg.
func NewCanvas(w, h int, bg color.Color) *image.NRGBA {
	return imaging.New(w, h, bg)
}

// Backdrop fills dst with src cropped to cover it, darkened by percent (0-100).
func Backdrop(dst *image.NRGBA, src image.Image, darken float64) *image.NRGBA {
	b := dst.Bounds()
	filled := imaging.Fill(src, b.Dx(), b.Dy(), imaging.Center, imaging.Lanczos)
	if darken > 0 {
		filled = imaging.AdjustBrightness(filled, -darken)
	}
	return imaging.Overlay(dst, filled, image.Pt(0, 0), 1.0)
}

// TextWidth is the rendered width of s at scale.
func TextWidth(s string, scale int) int {
	return len([]rune(s)) * GlyphWidth * scale
}

// DrawText draws s onto dst with its top-left corner at pt, each glyph pixel
// enlarged scale times.
func DrawText(dst *image.NRGBA, s string, pt image.Point, scale int, c color.Color) *image.NRGBA {
	if s == "" || scale < 1 {
		return dst
	}

	line := image.NewNRGBA(image.Rect(0, 0, TextWidth(s, 1), GlyphHeight))
	d := &font.Drawer{
		Dst:  line,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)

	scaled := imaging.Resize(line, line.Bounds().Dx()*scale, GlyphHeight*scale, imaging.NearestNeighbor)
	return imaging.Overlay(dst, scaled, pt, 1.0)
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

// applyOrientation undoes the camera rotation recorded in EXIF.
// 2 flip H, 3 rotate 180, 4 flip V, 5 transpose, 6 rotate 90 CW,
// 7 transverse, 8 rotate 90 CCW.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// detectFormat sniffs the image format from raw bytes.
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}

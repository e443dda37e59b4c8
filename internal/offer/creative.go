// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package offer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"sync"

	"github.com/davirds/portfolio/internal/imaging"
	"github.com/davirds/portfolio/internal/util"
)

// Format is the pixel size of a creative.
type Format struct {
	Name   string
	Width  int
	Height int
}

// Supported creative formats.
var (
	FormatSquare = Format{Name: "square", Width: 1080, Height: 1080}
	FormatWide   = Format{Name: "16x9", Width: 1920, Height: 1080}
)

// ErrUnknownFormat is returned for formats other than FormatSquare and FormatWide.
var ErrUnknownFormat = errors.New("unknown creative format")

// Palette.
var (
	colorBackground = color.NRGBA{R: 0x0B, G: 0x11, B: 0x20, A: 0xFF}
	colorText       = color.NRGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 0xFF}
	colorMuted      = color.NRGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF}
	colorAccent     = color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
)

// backdropDarken dims the optional photo so text stays readable.
const backdropDarken = 65

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	// MediaDir holds the optional backdrop photo.
	MediaDir string
	// Backdrop is a file name inside MediaDir; empty disables the photo.
	Backdrop string
	Logger   *slog.Logger
}

// Generator renders PNG creatives and caches the encoded bytes per format.
type Generator struct {
	cfg    GeneratorConfig
	text   Creative
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string][]byte
}

// NewGenerator creates a generator for the image ad text.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Generator{
		cfg:    cfg,
		text:   ImageAd(),
		logger: cfg.Logger,
		cache:  make(map[string][]byte),
	}
}

// Render returns the PNG for f, rendering it on first use.
func (g *Generator) Render(f Format) ([]byte, error) {
	if f != FormatSquare && f != FormatWide {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f.Name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if data, ok := g.cache[f.Name]; ok {
		return data, nil
	}

	img := g.compose(f)
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	g.cache[f.Name] = data
	g.logger.Info("ad creative rendered", "format", f.Name, "bytes", len(data))
	return data, nil
}

// Invalidate drops cached renders, e.g. after the backdrop photo changed.
func (g *Generator) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.cache)
}

// line is one row of centred text.
type line struct {
	text  string
	scale int
	color color.Color
	gap   int // space above, in glyph pixels at scale 1
}

func (g *Generator) compose(f Format) *image.NRGBA {
	canvas := imaging.NewCanvas(f.Width, f.Height, colorBackground)

	if photo := g.loadBackdrop(); photo != nil {
		canvas = imaging.Backdrop(canvas, photo, backdropDarken)
	}

	// Headline words are sized to the narrower side so both formats share a layout.
	big := f.Height / (imaging.GlyphHeight * 8)
	small := max(big/3, 1)
	maxChars := f.Width * 9 / 10 / (imaging.GlyphWidth * small)

	lines := []line{
		{text: g.text.Lead, scale: small, color: colorText},
		{text: g.text.First, scale: big, color: colorMuted, gap: 4},
		{text: g.text.Connector, scale: small, color: colorText, gap: 4},
		{text: g.text.Second, scale: big, color: colorAccent, gap: 4},
	}
	for i, w := range wrap(g.text.Tagline, maxChars) {
		gap := 0
		if i == 0 {
			gap = 10
		}
		lines = append(lines, line{text: w, scale: small, color: colorMuted, gap: gap})
	}

	total := 0
	for _, l := range lines {
		total += (l.gap + imaging.GlyphHeight) * l.scale
	}

	y := (f.Height - total) / 2
	for _, l := range lines {
		y += l.gap * l.scale
		x := (f.Width - imaging.TextWidth(l.text, l.scale)) / 2
		canvas = imaging.DrawText(canvas, l.text, image.Pt(x, y), l.scale, l.color)
		y += imaging.GlyphHeight * l.scale
	}

	footerY := f.Height - imaging.GlyphHeight*small*3
	footerX := (f.Width - imaging.TextWidth(g.text.Footer, small)) / 2
	return imaging.DrawText(canvas, g.text.Footer, image.Pt(footerX, footerY), small, colorAccent)
}

// loadBackdrop returns nil when no photo is configured or it cannot be read.
func (g *Generator) loadBackdrop() image.Image {
	if g.cfg.Backdrop == "" {
		return nil
	}
	path, err := util.SafeJoinPath(g.cfg.MediaDir, g.cfg.Backdrop)
	if err != nil {
		g.logger.Warn("invalid backdrop path", "backdrop", g.cfg.Backdrop, "error", err)
		return nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		g.logger.Warn("backdrop unavailable", "path", path, "error", err)
		return nil
	}
	return img
}

// wrap splits s into lines of at most width runes, breaking on spaces.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		return words
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len([]rune(cur))+1+len([]rune(w)) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(lines, cur)
}

package main

import (
	"image"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// loadFace parses a TTF file into a font.Face at the given point size.
// Used only by drawHUD when the caller supplies --font; gg falls back
// to its own built-in face otherwise.
func loadFace(fontPath string, points float64) (font.Face, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// captionBoxSize measures lines against face (falling back to a built-in
// bitmap face when the caller supplied none) and returns the pixel size
// of the background box drawn behind the HUD text. font.MeasureString
// reports glyph advances in fixed.Int26_6 (26.6 fixed-point) units, so
// the widest line has to be rounded up to a whole pixel count.
func captionBoxSize(face font.Face, lines []string) (w, h int) {
	if face == nil {
		face = basicfont.Face7x13
	}
	var maxWidth fixed.Int26_6
	for _, line := range lines {
		if adv := font.MeasureString(face, line); adv > maxWidth {
			maxWidth = adv
		}
	}
	return maxWidth.Ceil() + 8, len(lines)*16 + 8
}

// drawHUD overlays lines of debug text in the top-left corner of img,
// returning a new image (img itself is never mutated).
func drawHUD(img image.Image, lines []string, fontPath string) (image.Image, error) {
	ctx := gg.NewContextForImage(img)

	var face font.Face
	if fontPath != "" {
		f, err := loadFace(fontPath, 14)
		if err != nil {
			return nil, err
		}
		face = f
		ctx.SetFontFace(face)
	}

	boxW, boxH := captionBoxSize(face, lines)
	ctx.SetRGBA(0, 0, 0, 0.5)
	ctx.DrawRectangle(4, 4, float64(boxW), float64(boxH))
	ctx.Fill()

	ctx.SetRGB(0, 0, 0)
	for i, line := range lines {
		y := 17.0 + float64(i)*16
		ctx.DrawString(line, 9, y)
	}
	ctx.SetRGB(1, 1, 1)
	for i, line := range lines {
		y := 16.0 + float64(i)*16
		ctx.DrawString(line, 8, y)
	}

	return ctx.Image(), nil
}

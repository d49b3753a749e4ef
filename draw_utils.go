package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// All the functions below take coordinates in the following coordinate
// system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
// This holds for sub-images as well, see SubImage.

func DrawRect(screen *ebiten.Image, x, y, width, height float64,
	clr color.Color) {
	m := screen.Bounds().Min
	vector.DrawFilledRect(screen, float32(float64(m.X)+x),
		float32(float64(m.Y)+y), float32(width), float32(height), clr, false)
}

func DrawRectOutline(screen *ebiten.Image, x, y, width, height float64,
	strokeWidth float64, clr color.Color) {
	m := screen.Bounds().Min
	vector.StrokeRect(screen, float32(float64(m.X)+x),
		float32(float64(m.Y)+y), float32(width), float32(height),
		float32(strokeWidth), clr, false)
}

func DrawCircle(screen *ebiten.Image, centerX, centerY, radius float64,
	clr color.Color) {
	m := screen.Bounds().Min
	vector.DrawFilledCircle(screen, float32(float64(m.X)+centerX),
		float32(float64(m.Y)+centerY), float32(radius), clr, true)
}

// DrawText draws message inside of screen, optionally centered.
func DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, clr color.Color) {
	// The origin of the text is kind of the lower-left corner of its bounds.
	// Most of the text is above y and a little bit of it is under y. Read the
	// BoundString docs for the details.
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX - textSize.Min.X
	textY := screen.Bounds().Min.Y + offsetY - textSize.Min.Y
	text.Draw(screen, message, face, textX, textY, clr)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, relative to the top-left pixel of
// screen. Ebitengine would have r relative to the top-left pixel of the
// image screen was cut from. Thinking in local coordinates is the main reason
// for working with sub-images in the first place.
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

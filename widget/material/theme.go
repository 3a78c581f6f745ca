// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Palette contains the colors of a Material 3 style color scheme.
type Palette struct {
	// Bg is the window background.
	Bg color.NRGBA
	// Fg is the default text color.
	Fg color.NRGBA

	Surface          color.NRGBA
	SurfaceContainer color.NRGBA
	OnSurface        color.NRGBA

	Primary            color.NRGBA
	OnPrimary          color.NRGBA
	PrimaryContainer   color.NRGBA
	OnPrimaryContainer color.NRGBA
	SecondaryContainer color.NRGBA

	InverseSurface   color.NRGBA
	InverseOnSurface color.NRGBA
	OutlineVariant   color.NRGBA
}

// Theme holds the general theme of an app or window. Different top-level
// windows should have different instances of Theme.
type Theme struct {
	Palette
	// Face measures label text. Renderers draw labels with a
	// face of the same metrics.
	Face font.Face
}

// NewTheme constructs a theme with the baseline light color scheme.
func NewTheme() *Theme {
	t := &Theme{Face: basicfont.Face7x13}
	t.Palette = Palette{
		Bg:                 rgb(0xfef7ff),
		Fg:                 rgb(0x1d1b20),
		Surface:            rgb(0xfef7ff),
		SurfaceContainer:   rgb(0xf3edf7),
		OnSurface:          rgb(0x1d1b20),
		Primary:            rgb(0x6750a4),
		OnPrimary:          rgb(0xffffff),
		PrimaryContainer:   rgb(0xeaddff),
		OnPrimaryContainer: rgb(0x21005d),
		SecondaryContainer: rgb(0xe8def8),
		InverseSurface:     rgb(0x322f35),
		InverseOnSurface:   rgb(0xf5eff7),
		OutlineVariant:     rgb(0xcac4d0),
	}
	return t
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/op"
	"gioui.org/responsive/raster"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/svg"
	"gioui.org/responsive/widget/material"
)

// Scene lays out a fixture with the material demo components.
type Scene struct {
	Fixture Fixture
	Theme   *material.Theme

	list layout.List
}

// Output formats of Render.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

func NewScene(f Fixture) (*Scene, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Scene{
		Fixture: f,
		Theme:   material.NewTheme(),
		list:    layout.List{Axis: layout.Vertical},
	}, nil
}

// Frame lays out the scene into ops, which is reset first.
func (s *Scene) Frame(ops *op.Ops) scaffold.Frame {
	e := s.Fixture.ConfigEvent()
	gtx := layout.NewContext(ops, e)
	sc := s.scaffold()
	items := material.Items(s.Theme, s.Fixture.Slots.Items)
	items.List = &s.list
	return sc.Layout(gtx, items.Layout)
}

// Size returns the size of the scene in pixels.
func (s *Scene) Size() image.Point {
	e := s.Fixture.ConfigEvent()
	return image.Pt(e.Metric.Dp(e.Width), e.Metric.Dp(e.Height))
}

// Render lays out the scene and encodes it in format.
func (s *Scene) Render(w io.Writer, format string) (scaffold.Frame, error) {
	ops := new(op.Ops)
	f := s.Frame(ops)
	switch strings.ToLower(format) {
	case FormatPNG:
		img := image.NewRGBA(image.Rectangle{Max: f.Size})
		rasterize(ops, img)
		if err := png.Encode(w, img); err != nil {
			return f, fmt.Errorf("preview: encode png: %w", err)
		}
	case FormatSVG:
		if err := svg.Encode(w, ops, f.Size); err != nil {
			return f, err
		}
	default:
		return f, fmt.Errorf("preview: unknown format %q", format)
	}
	return f, nil
}

// Image lays out the scene and rasterizes it.
func (s *Scene) Image() (scaffold.Frame, *image.RGBA) {
	ops := new(op.Ops)
	f := s.Frame(ops)
	img := image.NewRGBA(image.Rectangle{Max: f.Size})
	rasterize(ops, img)
	return f, img
}

func rasterize(ops *op.Ops, img *image.RGBA) {
	var r raster.Rasterizer
	r.Frame(ops, img)
}

func (s *Scene) scaffold() scaffold.Scaffold {
	fx := s.Fixture
	th := s.Theme
	in := fx.ContentInsets()
	// Classify the dp viewport, not its size rounded to pixels.
	wsc := fx.ResolvedWindowSize()
	fabPos, _ := scaffold.ParseFabPosition(fx.Scaffold.FabPosition)

	nav := make([]material.NavItem, len(fx.Slots.NavItems))
	for i, l := range fx.Slots.NavItems {
		nav[i] = material.NavItem{Label: l, Icon: initial(l)}
	}

	sc := scaffold.Scaffold{
		FabPosition:   fabPos,
		ContentInsets: in,
		WindowSize:    &wsc,
	}
	if fx.Slots.TopBar {
		bar := material.TopAppBar(th, fx.Slots.Title)
		bar.Insets = scaffold.TopBarInsets(wsc, in)
		sc.TopBar = []layout.Widget{bar.Layout}
	}
	if fx.Slots.BottomBar {
		bar := material.NavigationBar(th, nav, fx.Slots.Selected)
		bar.Inset = in.Bottom
		sc.BottomBar = []scaffold.BarWidget{bar.Layout}
	}
	if fx.Slots.SideRail {
		var header layout.Widget
		if fx.Slots.RailFAB {
			header = material.FAB(th, "+").Layout
		}
		rail := material.NavigationRail(th, nav, fx.Slots.Selected, header)
		rail.Insets = scaffold.Insets{Top: in.Top, Bottom: in.Bottom, Start: in.Start}
		sc.SideRail = []layout.Widget{rail.Layout}
	}
	if fx.Slots.FAB {
		sc.FAB = []layout.Widget{material.FAB(th, "+").Layout}
	}
	if fx.Slots.Snackbar != "" {
		sc.Snackbar = []layout.Widget{material.Snackbar(th, fx.Slots.Snackbar).Layout}
	}
	return sc
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"strings"
	"testing"

	"gioui.org/responsive/internal/ops"
	"gioui.org/responsive/io/system"
	"gioui.org/responsive/layout"
	"gioui.org/responsive/op"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/unit"
)

var navItems = []NavItem{
	{Label: "Home", Icon: "H"},
	{Label: "Fav", Icon: "F"},
	{Label: "Profile", Icon: "P"},
}

func newContext(w, h int, dir system.TextDirection) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(w, h)},
		Locale:      system.Locale{Direction: dir},
	}
}

func labels(o *op.Ops) map[string]image.Point {
	m := make(map[string]image.Point)
	for _, it := range ops.Flatten(o) {
		if it.Label != "" {
			m[it.Label] = it.Rect.Min
		}
	}
	return m
}

func hasRect(o *op.Ops, r image.Rectangle) bool {
	for _, it := range ops.Flatten(o) {
		if it.Label == "" && it.Rect == r {
			return true
		}
	}
	return false
}

func TestLabel(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	dims := Label(th, "Home").Layout(gtx)
	if got, want := dims.Size, image.Pt(28, 13); got != want {
		t.Errorf("label size %v, want %v", got, want)
	}
	if got, want := dims.Baseline, 2; got != want {
		t.Errorf("label baseline %d, want %d", got, want)
	}
	if dims := Label(th, "").Layout(gtx); dims.Size != (image.Point{}) {
		t.Errorf("empty label size %v", dims.Size)
	}
}

func TestTopAppBar(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	bar := TopAppBar(th, "Title")
	bar.Insets = scaffold.Insets{Top: 24}
	dims := bar.Layout(gtx)
	if got, want := dims.Size, image.Pt(400, 88); got != want {
		t.Errorf("bar size %v, want %v", got, want)
	}
	if got, want := labels(gtx.Ops)["Title"], image.Pt(16, 49); got != want {
		t.Errorf("title at %v, want %v", got, want)
	}

	gtx = newContext(400, 800, system.RTL)
	bar.Layout(gtx)
	if got, want := labels(gtx.Ops)["Title"], image.Pt(400-16-35, 49); got != want {
		t.Errorf("RTL title at %v, want %v", got, want)
	}
}

func TestNavigationBar(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	gtx.Metric = unit.Metric{PxPerDp: 2}
	dims := NavigationBar(th, navItems, 0).Layout(gtx, nil)
	if got, want := dims.Size, image.Pt(400, 160); got != want {
		t.Errorf("bar size %v, want %v", got, want)
	}
	l := labels(gtx.Ops)
	if !(l["Home"].X < l["Fav"].X && l["Fav"].X < l["Profile"].X) {
		t.Errorf("LTR item order %v", l)
	}

	gtx = newContext(400, 800, system.RTL)
	NavigationBar(th, navItems, 0).Layout(gtx, nil)
	l = labels(gtx.Ops)
	if !(l["Home"].X > l["Fav"].X && l["Fav"].X > l["Profile"].X) {
		t.Errorf("RTL item order %v", l)
	}
}

func TestNavigationBarNotch(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	fab := &scaffold.FabPlacement{Left: 328, Width: 56, Height: 56}
	NavigationBar(th, navItems, 1).Layout(gtx, fab)
	if want := image.Rect(320, 0, 392, 8); !hasRect(gtx.Ops, want) {
		t.Errorf("no notch at %v", want)
	}
	gtx = newContext(400, 800, system.LTR)
	NavigationBar(th, navItems, 1).Layout(gtx, nil)
	if hasRect(gtx.Ops, image.Rect(320, 0, 392, 8)) {
		t.Error("notch drawn without FAB")
	}
}

func TestNavigationRail(t *testing.T) {
	th := NewTheme()
	gtx := newContext(900, 800, system.LTR)
	rail := NavigationRail(th, navItems, 0, FAB(th, "+").Layout)
	dims := rail.Layout(gtx)
	if got, want := dims.Size, image.Pt(80, 800); got != want {
		t.Errorf("rail size %v, want %v", got, want)
	}
	if want := image.Rect(12, 6, 68, 62); !hasRect(gtx.Ops, want) {
		t.Errorf("header FAB not at %v", want)
	}
	if want := image.Rect(79, 0, 80, 800); !hasRect(gtx.Ops, want) {
		t.Errorf("divider not at %v", want)
	}
	l := labels(gtx.Ops)
	if y := l["Profile"].Y; y < 400 || y > 800-12 {
		t.Errorf("last item at y=%d, want bottom aligned", y)
	}
	if l["Home"].Y >= l["Profile"].Y {
		t.Errorf("items out of order: %v", l)
	}

	gtx = newContext(900, 800, system.RTL)
	rail.Layout(gtx)
	if want := image.Rect(0, 0, 1, 800); !hasRect(gtx.Ops, want) {
		t.Errorf("RTL divider not at %v", want)
	}
}

func TestFAB(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	gtx.Metric = unit.Metric{PxPerDp: 2}
	dims := FAB(th, "+").Layout(gtx)
	if got, want := dims.Size, image.Pt(112, 112); got != want {
		t.Errorf("FAB size %v, want %v", got, want)
	}
	if _, ok := labels(gtx.Ops)["+"]; !ok {
		t.Error("FAB icon not drawn")
	}
}

func TestSnackbar(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	if dims := Snackbar(th, "").Layout(gtx); dims.Size != (image.Point{}) {
		t.Errorf("empty snackbar size %v", dims.Size)
	}
	if n := len(ops.Flatten(gtx.Ops)); n != 0 {
		t.Errorf("empty snackbar drew %d items", n)
	}
	if got, want := Snackbar(th, "Hi").Layout(gtx).Size, image.Pt(14+32, 48); got != want {
		t.Errorf("short snackbar size %v, want %v", got, want)
	}
	long := strings.Repeat("x", 200)
	if got, want := Snackbar(th, long).Layout(gtx).Size, image.Pt(400, 48); got != want {
		t.Errorf("snackbar in narrow window %v, want %v", got, want)
	}
	gtx = newContext(1200, 800, system.LTR)
	if got, want := Snackbar(th, long).Layout(gtx).Size, image.Pt(600, 48); got != want {
		t.Errorf("snackbar in wide window %v, want %v", got, want)
	}
}

func TestItemsPadding(t *testing.T) {
	th := NewTheme()
	gtx := newContext(400, 800, system.LTR)
	dims := Items(th, 100).Layout(gtx, scaffold.Padding{Top: 64, Bottom: 80})
	if got, want := dims.Size, image.Pt(400, 800); got != want {
		t.Errorf("content size %v, want %v", got, want)
	}
	l := labels(gtx.Ops)
	if got, want := l["Item: 0"], image.Pt(16, 80); got != want {
		t.Errorf("first item at %v, want %v", got, want)
	}
	if got, want := l["Item: 1"], image.Pt(16, 80+13+8); got != want {
		t.Errorf("second item at %v, want %v", got, want)
	}
	if _, ok := l["Item: 99"]; ok {
		t.Error("item below the fold laid out")
	}

	gtx = newContext(400, 800, system.RTL)
	Items(th, 3).Layout(gtx, scaffold.Padding{Start: 80})
	if got, want := labels(gtx.Ops)["Item: 0"], image.Pt(400-80-16-49, 16); got != want {
		t.Errorf("RTL first item at %v, want %v", got, want)
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"gioui.org/responsive/io/system"
	"gioui.org/responsive/op"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/sizeclass"
)

const expandedFixture = `
[viewport]
width = 900
height = 800
direction = "rtl"

[insets]
top = 24
bottom = 16

[slots]
snackbar = ""
nav_items = ["Inbox", "Sent"]
`

func TestParseFixture(t *testing.T) {
	f, err := ParseFixture(expandedFixture)
	if err != nil {
		t.Fatal(err)
	}
	if f.Viewport.Width != 900 || f.Viewport.Density != 1 {
		t.Errorf("viewport %+v", f.Viewport)
	}
	if dir, _ := f.Direction(); dir != system.RTL {
		t.Errorf("direction %v, want RTL", dir)
	}
	if got, want := f.ContentInsets(), (scaffold.Insets{Top: 24, Bottom: 16}); got != want {
		t.Errorf("insets %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(f.Slots.NavItems, []string{"Inbox", "Sent"}) {
		t.Errorf("nav items %v", f.Slots.NavItems)
	}
	if !f.Slots.TopBar || f.Slots.Items != 100 {
		t.Errorf("defaults lost: %+v", f.Slots)
	}
}

func TestParseFixtureErrors(t *testing.T) {
	for _, tc := range []struct {
		name, data string
	}{
		{"syntax", "[viewport\n"},
		{"unknown key", "[viewport]\ncolour = 1\n"},
		{"density", "[viewport]\ndensity = 0\n"},
		{"direction", "[viewport]\ndirection = \"up\"\n"},
		{"size class", "[viewport]\nsize_class = \"huge\"\n"},
		{"fab position", "[scaffold]\nfab_position = \"top\"\n"},
		{"negative width", "[viewport]\nwidth = -1\n"},
		{"negative inset", "[insets]\nstart = -4\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFixture(tc.data); err == nil {
				t.Error("ParseFixture succeeded")
			}
		})
	}
}

func TestFixtureWindowSize(t *testing.T) {
	f := DefaultFixture()
	if wsc, err := f.WindowSize(); wsc != nil || err != nil {
		t.Errorf("derived window size: got %v, %v", wsc, err)
	}
	f.Viewport.SizeClass = "expanded"
	wsc, err := f.WindowSize()
	if err != nil {
		t.Fatal(err)
	}
	want := sizeclass.WindowSizeClass{Width: sizeclass.Expanded, Height: sizeclass.Medium}
	if *wsc != want {
		t.Errorf("window size %v, want %v", *wsc, want)
	}
}

func TestSceneCompact(t *testing.T) {
	s, err := NewScene(DefaultFixture())
	if err != nil {
		t.Fatal(err)
	}
	f := s.Frame(new(op.Ops))
	if !f.Compact() {
		t.Fatal("default scene is not compact")
	}
	if f.Fab == nil || f.Fab.Left != 400-56-16 {
		t.Errorf("FAB placement %+v", f.Fab)
	}
	if got, want := f.FabOffset, 80+56+16; got != want {
		t.Errorf("FAB offset %d, want %d", got, want)
	}
	if got, want := f.Padding, (scaffold.Padding{Top: 64, Bottom: 80}); got != want {
		t.Errorf("padding %+v, want %+v", got, want)
	}
	if r, ok := f.Region(scaffold.Snackbar); !ok || r.Rect != image.Rect(0, 600, 400, 648) {
		t.Errorf("snackbar region %v, %v", r, ok)
	}
}

func TestSceneExpanded(t *testing.T) {
	fx, err := ParseFixture(expandedFixture)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewScene(fx)
	if err != nil {
		t.Fatal(err)
	}
	f := s.Frame(new(op.Ops))
	if f.Compact() {
		t.Fatal("900dp scene is compact")
	}
	if got, want := f.Padding, (scaffold.Padding{Top: 64 + 24, Bottom: 16, Start: 80}); got != want {
		t.Errorf("padding %+v, want %+v", got, want)
	}
	rail, ok := f.Region(scaffold.SideRail)
	if !ok || rail.Rect != image.Rect(820, 0, 900, 800) {
		t.Errorf("RTL side rail %v, %v", rail, ok)
	}
	if _, ok := f.Region(scaffold.FAB); ok {
		t.Error("standalone FAB placed in expanded scene")
	}
}

func TestSceneSizeClassOverride(t *testing.T) {
	fx := DefaultFixture()
	fx.Viewport.Width = 900
	fx.Viewport.SizeClass = "compact"
	s, err := NewScene(fx)
	if err != nil {
		t.Fatal(err)
	}
	f := s.Frame(new(op.Ops))
	if _, ok := f.Region(scaffold.BottomBar); !ok {
		t.Error("compact override did not show the bottom bar")
	}
}

func TestSceneFractionalWidth(t *testing.T) {
	for _, tc := range []struct {
		width, density float32
		compact        bool
	}{
		{599.6, 1, true},
		{599.9, 2.625, true},
		{600, 2.625, false},
	} {
		fx := DefaultFixture()
		fx.Viewport.Width = tc.width
		fx.Viewport.Density = tc.density
		s, err := NewScene(fx)
		if err != nil {
			t.Fatal(err)
		}
		f := s.Frame(new(op.Ops))
		if got := f.Compact(); got != tc.compact {
			t.Errorf("%vdp at density %v: compact %v, want %v", tc.width, tc.density, got, tc.compact)
		}
		if got, want := f.Compact(), fx.ResolvedWindowSize().IsCompactWidth(); got != want {
			t.Errorf("%vdp: frame compact %v, classified compact %v", tc.width, got, want)
		}
		if _, ok := f.Region(scaffold.BottomBar); ok != tc.compact {
			t.Errorf("%vdp: bottom bar placed %v, want %v", tc.width, ok, tc.compact)
		}
	}
}

func TestSceneDensity(t *testing.T) {
	fx := DefaultFixture()
	fx.Viewport.Density = 2
	s, err := NewScene(fx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Size(), image.Pt(800, 1600); got != want {
		t.Errorf("size %v, want %v", got, want)
	}
	f := s.Frame(new(op.Ops))
	if got, want := f.Padding.Top, 128; got != want {
		t.Errorf("top padding %d, want %d", got, want)
	}
}

func TestReport(t *testing.T) {
	s, err := NewScene(DefaultFixture())
	if err != nil {
		t.Fatal(err)
	}
	r := NewReport(s.Frame(new(op.Ops)))
	if got, want := r.Absent, []string{"SideRail"}; !reflect.DeepEqual(got, want) {
		t.Errorf("absent %v, want %v", got, want)
	}
	var slots []string
	for _, reg := range r.Regions {
		slots = append(slots, reg.Slot)
	}
	if want := []string{"MainContent", "TopBar", "Snackbar", "BottomBar", "FAB"}; !reflect.DeepEqual(slots, want) {
		t.Errorf("regions %v, want %v", slots, want)
	}

	var buf bytes.Buffer
	if err := r.Write(&buf, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var fromJSON Report
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromJSON, r) {
		t.Errorf("JSON report differs:\n%+v\n%+v", fromJSON, r)
	}

	buf.Reset()
	if err := r.Write(&buf, FormatYAML); err != nil {
		t.Fatal(err)
	}
	var fromYAML Report
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromYAML, r) {
		t.Errorf("YAML report differs:\n%+v\n%+v", fromYAML, r)
	}

	buf.Reset()
	if err := r.Write(&buf, FormatTable); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"400x800", "Compact x Medium", "BottomBar", "absent: SideRail"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table lacks %q:\n%s", want, buf.String())
		}
	}
	if err := r.Write(&buf, "xml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestRenderPNG(t *testing.T) {
	s, err := NewScene(DefaultFixture())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	f, err := s.Render(&buf, FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds().Size(), image.Pt(400, 800); got != want {
		t.Fatalf("image size %v, want %v", got, want)
	}
	fab, _ := f.Region(scaffold.FAB)
	p := fab.Rect.Min.Add(image.Pt(4, 4))
	got := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
	if want := s.Theme.PrimaryContainer; got != want {
		t.Errorf("FAB pixel %v, want %v", got, want)
	}
}

func TestRenderSVG(t *testing.T) {
	s, err := NewScene(DefaultFixture())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.Render(&buf, FormatSVG); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<svg", "Responsive Scaffold", "Item: 1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("SVG lacks %q", want)
		}
	}
	if _, err := s.Render(&buf, "gif"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestModel(t *testing.T) {
	s, err := NewScene(DefaultFixture())
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(s)
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 51})
	if !m.Frame().Compact() {
		t.Errorf("50 column terminal is %v", m.Frame().WindowSize)
	}
	if v := m.View(); !strings.Contains(v, "B") || !strings.Contains(v, "F") {
		t.Errorf("compact sketch lacks bottom bar or FAB:\n%s", v)
	}

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 51})
	if _, ok := m.Frame().Region(scaffold.SideRail); !ok {
		t.Error("wide terminal has no side rail")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Frame().Direction != system.RTL {
		t.Error("r did not switch to RTL")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Frame().Direction != system.LTR {
		t.Error("second r did not switch back to LTR")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if _, ok := m.Frame().Region(scaffold.Snackbar); ok {
		t.Error("s did not hide the snackbar")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q did not quit")
	}
}

func TestModelDirectionCase(t *testing.T) {
	fx := DefaultFixture()
	fx.Viewport.Direction = "RTL"
	s, err := NewScene(fx)
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(s)
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 51})
	if m.Frame().Direction != system.RTL {
		t.Fatal("upper case RTL fixture laid out LTR")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Frame().Direction != system.LTR {
		t.Error("one r press did not switch an RTL fixture to LTR")
	}
}

func TestSketch(t *testing.T) {
	f := scaffold.Frame{
		Size: image.Pt(400, 800),
		Regions: []scaffold.Region{
			{Slot: scaffold.MainContent, Rect: image.Rect(0, 0, 400, 800)},
			{Slot: scaffold.TopBar, Rect: image.Rect(0, 0, 400, 80)},
			{Slot: scaffold.BottomBar, Rect: image.Rect(0, 720, 400, 800)},
			{Slot: scaffold.FAB, Rect: image.Rect(300, 600, 400, 700)},
		},
	}
	got := Sketch(f, 4, 10)
	want := []string{
		"TTTT",
		"....",
		"....",
		"....",
		"....",
		"....",
		"....",
		"...F",
		"...F",
		"BBBB",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sketch:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

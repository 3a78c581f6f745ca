// SPDX-License-Identifier: Unlicense OR MIT

// Package preview builds demo scenes for the scaffold from fixture
// files and presents their layout as reports, images, a watch loop
// and a terminal preview.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"gioui.org/responsive/io/system"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/sizeclass"
	"gioui.org/responsive/unit"
)

// Fixture describes a scene: the window, its safe area insets and
// what each scaffold slot contains.
type Fixture struct {
	Viewport Viewport `toml:"viewport"`
	Insets   Insets   `toml:"insets"`
	Scaffold Options  `toml:"scaffold"`
	Slots    Slots    `toml:"slots"`
}

// Viewport is the window. Lengths are in dp.
type Viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	// Density is the number of pixels per dp.
	Density float32 `toml:"density"`
	// Direction is "ltr" or "rtl".
	Direction string `toml:"direction"`
	// SizeClass overrides the width class derived from Width.
	SizeClass string `toml:"size_class"`
}

// Insets are direction relative safe area insets in dp.
type Insets struct {
	Top    float32 `toml:"top"`
	Bottom float32 `toml:"bottom"`
	Start  float32 `toml:"start"`
	End    float32 `toml:"end"`
}

type Options struct {
	FabPosition string `toml:"fab_position"`
}

// Slots selects the demo components of the scene.
type Slots struct {
	Title     string `toml:"title"`
	TopBar    bool   `toml:"top_bar"`
	BottomBar bool   `toml:"bottom_bar"`
	SideRail  bool   `toml:"side_rail"`
	// RailFAB puts a FAB in the side rail header.
	RailFAB bool `toml:"rail_fab"`
	FAB     bool `toml:"fab"`
	// Snackbar is the snackbar message. Empty hides the snackbar.
	Snackbar string   `toml:"snackbar"`
	Items    int      `toml:"items"`
	NavItems []string `toml:"nav_items"`
	Selected int      `toml:"selected"`
}

// DefaultFixture returns the demo scene: a phone sized window with
// every slot populated.
func DefaultFixture() Fixture {
	return Fixture{
		Viewport: Viewport{
			Width:     400,
			Height:    800,
			Density:   1,
			Direction: "ltr",
		},
		Scaffold: Options{FabPosition: "end"},
		Slots: Slots{
			Title:     "Responsive Scaffold",
			TopBar:    true,
			BottomBar: true,
			SideRail:  true,
			RailFAB:   true,
			FAB:       true,
			Snackbar:  "Hello, Responsive Scaffold! It's nice to have you by my side! <3",
			Items:     100,
			NavItems:  []string{"Home", "Fav", "Profile"},
		},
	}
}

// LoadFixture reads a TOML fixture. Keys missing from the file keep
// their DefaultFixture values; unknown keys are an error.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("preview: %w", err)
	}
	f, err := ParseFixture(string(data))
	if err != nil {
		return Fixture{}, fmt.Errorf("preview: %s: %w", path, err)
	}
	return f, nil
}

// ParseFixture parses a TOML fixture.
func ParseFixture(data string) (Fixture, error) {
	f := DefaultFixture()
	md, err := toml.Decode(data, &f)
	if err != nil {
		return Fixture{}, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Fixture{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

// Validate reports the first invalid setting of f.
func (f Fixture) Validate() error {
	v := f.Viewport
	if v.Width < 0 || v.Height < 0 {
		return fmt.Errorf("negative viewport %vx%v", v.Width, v.Height)
	}
	if v.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", v.Density)
	}
	if _, err := f.Direction(); err != nil {
		return err
	}
	if _, err := f.WindowSize(); err != nil {
		return err
	}
	if _, err := scaffold.ParseFabPosition(f.Scaffold.FabPosition); err != nil {
		return err
	}
	in := f.Insets
	if in.Top < 0 || in.Bottom < 0 || in.Start < 0 || in.End < 0 {
		return fmt.Errorf("negative insets %+v", in)
	}
	if f.Slots.Items < 0 {
		return fmt.Errorf("negative item count %d", f.Slots.Items)
	}
	return nil
}

// Direction returns the text direction of the viewport.
func (f Fixture) Direction() (system.TextDirection, error) {
	switch strings.ToLower(f.Viewport.Direction) {
	case "", "ltr":
		return system.LTR, nil
	case "rtl":
		return system.RTL, nil
	}
	return 0, fmt.Errorf("unknown direction %q", f.Viewport.Direction)
}

// WindowSize returns the size class override of the viewport, or nil
// if the class is derived from the window size.
func (f Fixture) WindowSize() (*sizeclass.WindowSizeClass, error) {
	if f.Viewport.SizeClass == "" {
		return nil, nil
	}
	c, err := sizeclass.ParseClass(f.Viewport.SizeClass)
	if err != nil {
		return nil, err
	}
	wsc := sizeclass.WindowSizeClass{
		Width:  c,
		Height: sizeclass.HeightClass(unit.Dp(f.Viewport.Height)),
	}
	return &wsc, nil
}

// ResolvedWindowSize returns the size class override of the viewport,
// or the class of its width and height in dp.
func (f Fixture) ResolvedWindowSize() sizeclass.WindowSizeClass {
	if wsc, err := f.WindowSize(); err == nil && wsc != nil {
		return *wsc
	}
	return sizeclass.Classify(unit.Dp(f.Viewport.Width), unit.Dp(f.Viewport.Height))
}

// ConfigEvent returns the window configuration of the fixture.
func (f Fixture) ConfigEvent() system.ConfigEvent {
	dir, _ := f.Direction()
	d := f.Viewport.Density
	return system.ConfigEvent{
		Width:  unit.Dp(f.Viewport.Width),
		Height: unit.Dp(f.Viewport.Height),
		Metric: unit.Metric{PxPerDp: d, PxPerSp: d},
		Locale: system.Locale{Direction: dir},
	}
}

// ContentInsets returns the insets of f for the scaffold.
func (f Fixture) ContentInsets() scaffold.Insets {
	return scaffold.Insets{
		Top:    unit.Dp(f.Insets.Top),
		Bottom: unit.Dp(f.Insets.Bottom),
		Start:  unit.Dp(f.Insets.Start),
		End:    unit.Dp(f.Insets.End),
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package scaffold

import (
	"image"

	"gioui.org/responsive/io/system"
	"gioui.org/responsive/layout"
	"gioui.org/responsive/sizeclass"
)

// Slot names a scaffold region. The constants are in placement order.
type Slot uint8

const (
	MainContent Slot = iota
	TopBar
	Snackbar
	BottomBar
	SideRail
	FAB
)

// Slots lists every slot in placement order.
var Slots = []Slot{MainContent, TopBar, Snackbar, BottomBar, SideRail, FAB}

// Region is the placement of a slot.
type Region struct {
	Slot Slot
	Rect image.Rectangle
}

// Frame is the result of a layout pass.
type Frame struct {
	// Size is the size of the scaffold.
	Size image.Point
	// WindowSize is the size class the pass was laid out for.
	WindowSize sizeclass.WindowSizeClass
	Direction  system.TextDirection
	// Regions are the placed slots in placement order. Absent slots
	// have no region.
	Regions []Region
	// Padding is the padding handed to the main content.
	Padding Padding
	// Fab is the FAB placement, or nil if no FAB was placed.
	Fab *FabPlacement
	// FabOffset is the distance from the bottom of the scaffold to the
	// top of the FAB, or zero.
	FabOffset int
	// SnackbarOffset is the distance from the bottom of the scaffold to
	// the top of the snackbar, or zero.
	SnackbarOffset int
}

// Compact reports whether the frame uses the compact presentation.
func (f Frame) Compact() bool {
	return f.WindowSize.IsCompactWidth()
}

// Region returns the placement of slot s, if it was placed.
func (f Frame) Region(s Slot) (Region, bool) {
	for _, r := range f.Regions {
		if r.Slot == s {
			return r, true
		}
	}
	return Region{}, false
}

// Dimensions returns the dimensions of the scaffold.
func (f Frame) Dimensions() layout.Dimensions {
	return layout.Dimensions{Size: f.Size}
}

func (s Slot) String() string {
	switch s {
	case MainContent:
		return "MainContent"
	case TopBar:
		return "TopBar"
	case Snackbar:
		return "Snackbar"
	case BottomBar:
		return "BottomBar"
	case SideRail:
		return "SideRail"
	case FAB:
		return "FAB"
	default:
		panic("invalid Slot")
	}
}

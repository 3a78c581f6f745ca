// SPDX-License-Identifier: Unlicense OR MIT

package scaffold

import (
	"fmt"
	"strings"

	"gioui.org/responsive/layout"
	"gioui.org/responsive/unit"
)

// FabSpacing is the distance between the FAB and the bottom bar, or
// the bottom of the scaffold, and between the FAB and the trailing edge.
const FabSpacing = unit.Dp(16)

// FabPosition is the position of the FAB on the screen.
type FabPosition uint8

const (
	// BottomEnd positions the FAB at the bottom trailing corner, above
	// the bottom bar if present.
	BottomEnd FabPosition = iota
	// BottomCenter positions the FAB at the bottom center, above the
	// bottom bar if present.
	BottomCenter
)

// FabPlacement is the position and size of the FAB in a layout pass,
// in pixels.
type FabPlacement struct {
	// Left is the distance from the left edge of the scaffold, already
	// adjusted for right-to-left layouts.
	Left int
	// Width and Height are the measured size of the FAB.
	Width, Height int
}

// BarWidget is a bottom bar. It receives the placement of the FAB, or
// nil if there is no FAB, so it can leave room for it.
type BarWidget func(gtx layout.Context, fab *FabPlacement) layout.Dimensions

// Bar adapts a widget that ignores the FAB placement.
func Bar(w layout.Widget) BarWidget {
	return func(gtx layout.Context, _ *FabPlacement) layout.Dimensions {
		return w(gtx)
	}
}

func (p FabPosition) String() string {
	switch p {
	case BottomEnd:
		return "BottomEnd"
	case BottomCenter:
		return "BottomCenter"
	default:
		panic("invalid FabPosition")
	}
}

// ParseFabPosition parses "end", "center" or the String form of a
// FabPosition.
func ParseFabPosition(s string) (FabPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end", "bottomend", "bottom-end":
		return BottomEnd, nil
	case "center", "bottomcenter", "bottom-center":
		return BottomCenter, nil
	}
	return 0, fmt.Errorf("scaffold: unknown FAB position %q", s)
}

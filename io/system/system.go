// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains the environment properties a window hands
// to the top-level program: the locale it runs in and the safe area
// insets of the display.
package system

import (
	"gioui.org/responsive/unit"
)

// Locale provides language information for the current system.
type Locale struct {
	// Language is the BCP-47 tag for the primary language of the system.
	Language string
	// Direction indicates the primary direction of text and layout
	// flow for the system.
	Direction TextDirection
}

// TextDirection defines a direction for text flow.
type TextDirection byte

const (
	// LTR is left-to-right text.
	LTR TextDirection = iota
	// RTL is right-to-left text.
	RTL
)

// Insets is the space taken up by
// system decoration such as translucent
// system bars, display cutouts and gesture areas.
type Insets struct {
	Top, Bottom, Left, Right unit.Dp
}

// ConfigEvent is sent whenever the configuration of a window
// changes, for example on rotation or resize.
type ConfigEvent struct {
	// Size is the dimensions of the window in dp.
	Width, Height unit.Dp
	// Metric converts dp to the pixels of the window.
	Metric unit.Metric
	Locale Locale
	Insets Insets
}

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("invalid TextDirection")
	}
}

// Start returns the inset on the leading edge for the
// text direction d.
func (i Insets) Start(d TextDirection) unit.Dp {
	if d == RTL {
		return i.Right
	}
	return i.Left
}

// End returns the inset on the trailing edge for the
// text direction d.
func (i Insets) End(d TextDirection) unit.Dp {
	if d == RTL {
		return i.Left
	}
	return i.Right
}

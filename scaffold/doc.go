// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scaffold implements a responsive screen layout: a top bar, a
bottom navigation bar, a side navigation rail, a floating action button
(FAB), a snackbar host and the main content, arranged according to the
width of the window.

When the window width is compact (narrower than 600dp) the scaffold
shows the bottom bar and the standalone FAB and hides the side rail.
Otherwise it shows the side rail and hides both the bottom bar and the
standalone FAB; programs are expected to put their FAB in the header
of the rail instead.

A layout pass measures every slot once, computes the offsets between
them and records the placements into the operation list of the
context:

	var s scaffold.Scaffold
	s.TopBar = []layout.Widget{topBar}
	s.BottomBar = []scaffold.BarWidget{scaffold.Bar(navBar)}
	s.SideRail = []layout.Widget{rail}
	s.FAB = []layout.Widget{fab}
	frame := s.Layout(gtx, func(gtx layout.Context, pad scaffold.Padding) layout.Dimensions {
		return pad.Inset(gtx.Metric, gtx.Locale.Direction).Layout(gtx, content)
	})

The padding handed to the content equals the extent of the chrome that
is present, falling back to the content insets of the scaffold for
absent chrome, so the content never renders underneath a bar or rail.
A slot whose widgets measure to zero width or height is absent: it is
not placed and reserves no space.

Slots are placed in a fixed order: main content, top bar, snackbar,
bottom bar, side rail and finally the FAB, which draws above
everything else. The returned Frame describes the placements.

Layout keeps no state between calls and may be called every frame.
*/
package scaffold

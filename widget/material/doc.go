// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the Material design components that
// populate a scaffold: top app bar, navigation bar, navigation rail,
// floating action button, snackbar and a list of items.
//
// Components are described by style values returned from functions
// taking a Theme, and drawn by their Layout method:
//
//	th := material.NewTheme()
//	bar := material.TopAppBar(th, "Responsive Scaffold")
//	bar.Layout(gtx)
//
// The Layout methods have the signatures the scaffold slots expect,
// so method values can be used directly:
//
//	s := scaffold.Scaffold{
//		TopBar:    []layout.Widget{bar.Layout},
//		BottomBar: []scaffold.BarWidget{material.NavigationBar(th, items, 0).Layout},
//	}
//
// # Customization
//
// Theme-global parameters: For changing the look of all components
// drawn with a particular theme, adjust the Palette fields:
//
//	th.Palette.Primary = color.NRGBA{...}
//
// Component-local parameters: For changing the look of a particular
// component, adjust the style value before calling Layout:
//
//	fab := material.FAB(th, "+")
//	fab.Background = th.Palette.PrimaryContainer
//	fab.Layout(gtx)
//
// Components size themselves with the Material metrics: a 64dp top
// app bar, an 80dp navigation bar and rail and a 56dp FAB.
package material

// SPDX-License-Identifier: Unlicense OR MIT

package scaffold_test

import (
	"fmt"
	"image"

	"gioui.org/responsive/io/system"
	"gioui.org/responsive/layout"
	"gioui.org/responsive/op"
	"gioui.org/responsive/scaffold"
	"gioui.org/responsive/unit"
)

func box(w, h unit.Dp) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Constrain(image.Pt(gtx.Dp(w), gtx.Dp(h)))}
	}
}

func ExampleScaffold_Layout() {
	ops := new(op.Ops)
	s := scaffold.Scaffold{
		TopBar:    []layout.Widget{box(10000, 64)},
		BottomBar: []scaffold.BarWidget{scaffold.Bar(box(10000, 80))},
		SideRail:  []layout.Widget{box(80, 10000)},
		FAB:       []layout.Widget{box(56, 56)},
	}
	content := func(gtx layout.Context, pad scaffold.Padding) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}

	for _, width := range []unit.Dp{400, 900} {
		gtx := layout.NewContext(ops, system.ConfigEvent{Width: width, Height: 800})
		f := s.Layout(gtx, content)
		fmt.Println(f.WindowSize, f.Padding)
		for _, r := range f.Regions {
			fmt.Println(" ", r.Slot, r.Rect)
		}
	}

	// Output:
	// Compact x Medium {64 80 0 0}
	//   MainContent (0,0)-(400,800)
	//   TopBar (0,0)-(400,64)
	//   BottomBar (0,720)-(400,800)
	//   FAB (328,648)-(384,704)
	// Expanded x Medium {64 0 80 0}
	//   MainContent (0,0)-(900,800)
	//   TopBar (80,0)-(900,64)
	//   SideRail (0,0)-(80,800)
}

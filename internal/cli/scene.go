// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gioui.org/responsive/internal/preview"
)

// sceneOpts holds the flags that override fixture settings. Only flags
// set on the command line are applied.
type sceneOpts struct {
	width       float32 // window width in dp
	height      float32 // window height in dp
	density     float32 // pixels per dp
	rtl         bool    // right-to-left layout
	sizeClass   string  // width class override
	fabPosition string  // "end" or "center"
}

func addSceneFlags(cmd *cobra.Command, o *sceneOpts) {
	fs := cmd.Flags()
	fs.Float32Var(&o.width, "width", 400, "window width in dp")
	fs.Float32Var(&o.height, "height", 800, "window height in dp")
	fs.Float32Var(&o.density, "density", 1, "pixels per dp")
	fs.BoolVar(&o.rtl, "rtl", false, "lay out right to left")
	fs.StringVar(&o.sizeClass, "size-class", "", "width class override: compact, medium or expanded")
	fs.StringVar(&o.fabPosition, "fab-position", "", "FAB position: end or center")
}

// apply overrides the settings of f named by changed flags.
func (o *sceneOpts) apply(cmd *cobra.Command, f *preview.Fixture) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		f.Viewport.Width = o.width
	}
	if fs.Changed("height") {
		f.Viewport.Height = o.height
	}
	if fs.Changed("density") {
		f.Viewport.Density = o.density
	}
	if fs.Changed("rtl") {
		f.Viewport.Direction = "ltr"
		if o.rtl {
			f.Viewport.Direction = "rtl"
		}
	}
	if fs.Changed("size-class") {
		f.Viewport.SizeClass = o.sizeClass
	}
	if fs.Changed("fab-position") {
		f.Scaffold.FabPosition = o.fabPosition
	}
}

// loadScene builds the scene of the fixture named by args, or of the
// default fixture if args is empty.
func (o *sceneOpts) loadScene(cmd *cobra.Command, args []string) (*preview.Scene, error) {
	f := preview.DefaultFixture()
	if len(args) > 0 {
		var err error
		if f, err = preview.LoadFixture(args[0]); err != nil {
			return nil, err
		}
		loggerFromContext(cmd.Context()).Debug("fixture loaded", "path", args[0])
	}
	o.apply(cmd, &f)
	return preview.NewScene(f)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

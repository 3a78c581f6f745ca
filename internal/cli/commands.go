// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gioui.org/responsive/internal/preview"
	"gioui.org/responsive/op"
	"gioui.org/responsive/raster"
	"gioui.org/responsive/sizeclass"
	"gioui.org/responsive/unit"
)

func (c *CLI) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify WIDTH HEIGHT",
		Short: "Print the window size class of a window in dp",
		Long:  `Classify prints the width and height classes of a window measured in dp. Pass negative sizes after "--", as in: scaffoldview classify -- -10 2000.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dims [2]float64
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", a, err)
				}
				dims[i] = v
			}
			wsc := sizeclass.Classify(unit.Dp(dims[0]), unit.Dp(dims[1]))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), wsc)
			return err
		},
	}
}

// reportFormat returns format, or the default format for w: a table
// on terminals, JSON otherwise.
func reportFormat(format string, w io.Writer) string {
	if format != "" {
		return format
	}
	if isTerminal(w) {
		return preview.FormatTable
	}
	return preview.FormatJSON
}

func (c *CLI) frameCommand() *cobra.Command {
	var (
		opts   sceneOpts
		format string
	)
	cmd := &cobra.Command{
		Use:   "frame [fixture]",
		Short: "Print the regions of a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			r := preview.NewReport(s.Frame(new(op.Ops)))
			return r.Write(out, reportFormat(format, out))
		},
	}
	addSceneFlags(cmd, &opts)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, json or yaml (default table on terminals, json otherwise)")
	return cmd
}

func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts   sceneOpts
		output string
		format string
		scale  float64
	)
	cmd := &cobra.Command{
		Use:   "render [fixture]",
		Short: "Draw a scene to PNG or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			}
			if format != preview.FormatPNG && format != preview.FormatSVG {
				return fmt.Errorf("unknown output format %q, want png or svg", format)
			}
			if scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", scale)
			}
			s, err := opts.loadScene(cmd, args)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			if err := writeFile(output, func(w io.Writer) error {
				if format != preview.FormatPNG || scale == 1 {
					_, err := s.Render(w, format)
					return err
				}
				_, img := s.Image()
				size := img.Bounds().Size()
				scaled := raster.Scale(img, image.Pt(int(float64(size.X)*scale), int(float64(size.Y)*scale)))
				return png.Encode(w, scaled)
			}); err != nil {
				return err
			}
			prog.done("Rendered " + output)
			return nil
		},
	}
	addSceneFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.png or .svg)")
	cmd.Flags().StringVar(&format, "format", "", "output format, overriding the file extension")
	cmd.Flags().Float64Var(&scale, "scale", 1, "PNG scale factor")
	cmd.MarkFlagRequired("output")
	return cmd
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

func (c *CLI) watchCommand() *cobra.Command {
	var (
		opts   sceneOpts
		format string
	)
	cmd := &cobra.Command{
		Use:   "watch fixture",
		Short: "Print the frame of a fixture every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()
			format = reportFormat(format, out)
			logger.Info("Watching", "path", args[0])
			return preview.Watch(ctx, args[0], logger, func(f preview.Fixture) error {
				opts.apply(cmd, &f)
				s, err := preview.NewScene(f)
				if err != nil {
					logger.Error("skipping fixture", "err", err)
					return nil
				}
				return preview.NewReport(s.Frame(new(op.Ops))).Write(out, format)
			})
		},
	}
	addSceneFlags(cmd, &opts)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, json or yaml (default table on terminals, json otherwise)")
	return cmd
}

func (c *CLI) previewCommand() *cobra.Command {
	var opts sceneOpts
	cmd := &cobra.Command{
		Use:   "preview [fixture]",
		Short: "Sketch a scene in the terminal",
		Long:  `Preview sketches the regions of a scene in the terminal. The window follows the terminal size at 8x16dp per cell. Keys: r toggles right to left, f moves the FAB, s toggles the snackbar, q quits.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("preview needs a terminal")
			}
			s, err := opts.loadScene(cmd, args)
			if err != nil {
				return err
			}
			p := tea.NewProgram(preview.NewModel(s), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				if ctxErr := cmd.Context().Err(); ctxErr != nil {
					return ctxErr
				}
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}
	addSceneFlags(cmd, &opts)
	return cmd
}

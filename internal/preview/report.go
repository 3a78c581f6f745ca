// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"gioui.org/responsive/scaffold"
)

// Report formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Report is the serializable form of a scaffold frame.
type Report struct {
	Width      int           `json:"width" yaml:"width"`
	Height     int           `json:"height" yaml:"height"`
	WindowSize string        `json:"window_size" yaml:"window_size"`
	Compact    bool          `json:"compact" yaml:"compact"`
	Direction  string        `json:"direction" yaml:"direction"`
	Padding    PaddingReport `json:"padding" yaml:"padding"`
	Fab        *FabReport    `json:"fab,omitempty" yaml:"fab,omitempty"`
	// FabOffset and SnackbarOffset are measured from the bottom edge.
	FabOffset      int            `json:"fab_offset" yaml:"fab_offset"`
	SnackbarOffset int            `json:"snackbar_offset" yaml:"snackbar_offset"`
	Regions        []RegionReport `json:"regions" yaml:"regions"`
	// Absent lists the slots that were not placed, sorted by name.
	Absent []string `json:"absent" yaml:"absent"`
}

type PaddingReport struct {
	Top    int `json:"top" yaml:"top"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
}

type FabReport struct {
	Left   int `json:"left" yaml:"left"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type RegionReport struct {
	Slot   string `json:"slot" yaml:"slot"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

var (
	colorHeader = lipgloss.Color("245")
	colorBorder = lipgloss.Color("240")
	colorSlot   = lipgloss.Color("36")
)

func NewReport(f scaffold.Frame) Report {
	r := Report{
		Width:          f.Size.X,
		Height:         f.Size.Y,
		WindowSize:     f.WindowSize.String(),
		Compact:        f.Compact(),
		Direction:      f.Direction.String(),
		FabOffset:      f.FabOffset,
		SnackbarOffset: f.SnackbarOffset,
		Padding: PaddingReport{
			Top:    f.Padding.Top,
			Bottom: f.Padding.Bottom,
			Start:  f.Padding.Start,
			End:    f.Padding.End,
		},
		Regions: []RegionReport{},
	}
	if f.Fab != nil {
		r.Fab = &FabReport{Left: f.Fab.Left, Width: f.Fab.Width, Height: f.Fab.Height}
	}
	absent := make(map[string]bool)
	for _, s := range scaffold.Slots {
		absent[s.String()] = true
	}
	for _, reg := range f.Regions {
		delete(absent, reg.Slot.String())
		r.Regions = append(r.Regions, RegionReport{
			Slot:   reg.Slot.String(),
			X:      reg.Rect.Min.X,
			Y:      reg.Rect.Min.Y,
			Width:  reg.Rect.Dx(),
			Height: reg.Rect.Dy(),
		})
	}
	r.Absent = maps.Keys(absent)
	slices.Sort(r.Absent)
	return r
}

// Write encodes r in format.
func (r Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("preview: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("preview: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("preview: encode yaml: %w", err)
		}
	case FormatTable:
		if _, err := io.WriteString(w, r.Table()+"\n"); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	default:
		return fmt.Errorf("preview: unknown report format %q", format)
	}
	return nil
}

// Table renders r as a summary line followed by a table of regions.
func (r Report) Table() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d %s %s padding %d/%d/%d/%d\n",
		r.Width, r.Height, r.WindowSize, r.Direction,
		r.Padding.Top, r.Padding.Bottom, r.Padding.Start, r.Padding.End)
	rows := make([][]string, len(r.Regions))
	for i, reg := range r.Regions {
		rows[i] = []string{
			reg.Slot,
			strconv.Itoa(reg.X),
			strconv.Itoa(reg.Y),
			strconv.Itoa(reg.Width),
			strconv.Itoa(reg.Height),
		}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Slot", "X", "Y", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorSlot)
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	if len(r.Absent) > 0 {
		b.WriteString("\nabsent: " + strings.Join(r.Absent, ", "))
	}
	return b.String()
}

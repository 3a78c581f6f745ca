// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gioui.org/responsive/io/system"
	"gioui.org/responsive/op"
	"gioui.org/responsive/scaffold"
)

// Cell is the size of a terminal cell in dp.
var Cell = image.Pt(8, 16)

// Model is a bubbletea model sketching a scene in the terminal. The
// window follows the terminal size.
type Model struct {
	scene *Scene
	ops   *op.Ops
	frame scaffold.Frame
	cols  int
	rows  int
}

var slotGlyphs = map[scaffold.Slot]rune{
	scaffold.MainContent: '.',
	scaffold.TopBar:      'T',
	scaffold.Snackbar:    'S',
	scaffold.BottomBar:   'B',
	scaffold.SideRail:    'R',
	scaffold.FAB:         'F',
}

var slotStyles = map[rune]lipgloss.Style{
	'.': lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	'T': lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	'S': lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	'B': lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	'R': lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	'F': lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func NewModel(s *Scene) *Model {
	return &Model{scene: s, ops: new(op.Ops)}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height-1)
	case tea.KeyMsg:
		fx := &m.scene.Fixture
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if dir, _ := fx.Direction(); dir == system.RTL {
				fx.Viewport.Direction = "ltr"
			} else {
				fx.Viewport.Direction = "rtl"
			}
		case "f":
			if fx.Scaffold.FabPosition == "center" {
				fx.Scaffold.FabPosition = "end"
			} else {
				fx.Scaffold.FabPosition = "center"
			}
		case "s":
			if fx.Slots.Snackbar != "" {
				fx.Slots.Snackbar = ""
			} else {
				fx.Slots.Snackbar = DefaultFixture().Slots.Snackbar
			}
		}
		m.layout()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.cols <= 0 || m.rows <= 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range Sketch(m.frame, m.cols, m.rows) {
		for _, r := range line {
			if st, ok := slotStyles[r]; ok {
				b.WriteString(st.Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	fx := m.scene.Fixture
	b.WriteString(statusStyle.Render(fmt.Sprintf("%vx%vdp %v %s  [r]tl [f]ab [s]nackbar [q]uit",
		fx.Viewport.Width, fx.Viewport.Height, m.frame.WindowSize, fx.Viewport.Direction)))
	return b.String()
}

// Frame returns the most recent layout.
func (m *Model) Frame() scaffold.Frame {
	return m.frame
}

func (m *Model) resize(cols, rows int) {
	if rows < 0 {
		rows = 0
	}
	m.cols, m.rows = cols, rows
	m.scene.Fixture.Viewport.Width = float32(cols * Cell.X)
	m.scene.Fixture.Viewport.Height = float32(rows * Cell.Y)
	m.layout()
}

func (m *Model) layout() {
	m.frame = m.scene.Frame(m.ops)
}

// Sketch draws f on a grid of cols by rows characters. Each cell shows
// the glyph of the topmost slot covering its center.
func Sketch(f scaffold.Frame, cols, rows int) []string {
	lines := make([]string, rows)
	line := make([]rune, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := image.Pt(
				(2*x+1)*f.Size.X/(2*cols),
				(2*y+1)*f.Size.Y/(2*rows),
			)
			line[x] = ' '
			for _, reg := range f.Regions {
				if p.In(reg.Rect) {
					line[x] = slotGlyphs[reg.Slot]
				}
			}
		}
		lines[y] = string(line)
	}
	return lines
}

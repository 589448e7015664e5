package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/layout"
	"github.com/matzehuels/spanlayout/pkg/render"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

// Pixels per terminal cell at zoom level 1.
const (
	defaultCellWidth  = 10
	defaultCellHeight = 20
	minCellWidth      = 1
	minCellHeight     = 2
)

// viewCommand creates the interactive view command.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <document>",
		Short: "Resize a layout live with the terminal window",
		Long: `View draws a layout document in the terminal and re-solves it every time
the window is resized. Each cell stands for a block of pixels; +/- zoom.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runView(ctx context.Context, input string) error {
	doc, err := pkgio.Load(input)
	if err != nil {
		return err
	}
	l, err := doc.Build(layout.WithLogger(loggerFromContext(ctx)))
	if err != nil {
		return err
	}

	p := tea.NewProgram(newViewModel(l), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// viewModel is the bubbletea model of the view command.
type viewModel struct {
	layout   *layout.Layout
	solution solver.Solution
	cols     int
	rows     int
	cellW    int
	cellH    int
}

func newViewModel(l *layout.Layout) viewModel {
	return viewModel{layout: l, cellW: defaultCellWidth, cellH: defaultCellHeight}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, max(1, msg.Height-1)
		m.resolve()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.cellW = max(minCellWidth, m.cellW*2/3)
			m.cellH = max(minCellHeight, m.cellH*2/3)
			m.resolve()
		case "-", "_":
			m.cellW = m.cellW * 3 / 2
			m.cellH = m.cellH * 3 / 2
			m.resolve()
		}
	}
	return m, nil
}

// resolve resizes the layout to the pixel size of the window.
func (m *viewModel) resolve() {
	if m.cols == 0 {
		return
	}
	m.solution = m.layout.Resize(m.cols*m.cellW, m.rows*m.cellH)
}

func (m viewModel) View() string {
	if m.cols == 0 {
		return "waiting for window size…"
	}
	scene := render.SceneOf(m.layout)
	var b strings.Builder
	b.WriteString(drawScene(scene, m.cols, m.rows, m.cellW, m.cellH))
	b.WriteString("\n")
	b.WriteString(m.statusLine(scene))
	return b.String()
}

func (m viewModel) statusLine(scene render.Scene) string {
	status := StyleSuccess.Render("solved")
	switch {
	case m.solution.IsInconsistent():
		status = StyleWarning.Render(fmt.Sprintf("inconsistent %v", m.solution.Inconsistencies.Sorted()))
	case !m.solution.IsSolved():
		status = StyleWarning.Render("underdetermined")
	}
	info := StyleDim.Render(fmt.Sprintf(" %dx%d px · %d items · 1 cell = %dx%d px · ",
		scene.Width, scene.Height, len(scene.Items), m.cellW, m.cellH))
	return info + status + StyleDim.Render(" · q quit, +/- zoom")
}

// drawScene rasterizes scene onto a cols x rows character grid.
func drawScene(scene render.Scene, cols, rows, cellW, cellH int) string {
	grid := make([][]rune, rows)
	owner := make([][]int, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
		owner[y] = make([]int, cols)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}

	for i, it := range scene.Items {
		x0, y0 := it.Left/cellW, it.Top/cellH
		x1 := max(x0, (it.Left+it.Width)/cellW-1)
		y1 := max(y0, (it.Top+it.Height)/cellH-1)
		for y := y0; y <= y1 && y < rows; y++ {
			for x := x0; x <= x1 && x < cols; x++ {
				owner[y][x] = i
				grid[y][x] = boxRune(x, y, x0, y0, x1, y1)
			}
		}
		labelRow := y0
		if y1-y0 >= 2 {
			labelRow = y0 + 1
		}
		if labelRow < rows {
			for j, r := range []rune(it.Name) {
				x := x0 + 1 + j
				if x >= x1 || x >= cols {
					break
				}
				grid[labelRow][x] = r
			}
		}
	}

	var b strings.Builder
	for y := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= cols; x++ {
			if x < cols && owner[y][x] == owner[y][start] {
				continue
			}
			run := string(grid[y][start:x])
			if o := owner[y][start]; o >= 0 {
				color := lipgloss.Color(render.ColorFor(scene.Items[o].Name, nil))
				run = lipgloss.NewStyle().Foreground(color).Render(run)
			}
			b.WriteString(run)
			start = x
		}
	}
	return b.String()
}

// boxRune returns the border or fill rune of cell (x, y) in a box.
func boxRune(x, y, x0, y0, x1, y1 int) rune {
	if x0 == x1 || y0 == y1 {
		return '█'
	}
	switch {
	case x == x0 && y == y0:
		return '┌'
	case x == x1 && y == y0:
		return '┐'
	case x == x0 && y == y1:
		return '└'
	case x == x1 && y == y1:
		return '┘'
	case y == y0 || y == y1:
		return '─'
	case x == x0 || x == x1:
		return '│'
	}
	return ' '
}

package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/spanlayout/pkg/layout"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for failures.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// statusStyles colours a classification by name.
var statusStyles = map[string]lipgloss.Style{
	solver.Solved.String():          StyleSuccess,
	solver.Underdetermined.String(): StyleWarning,
	solver.Inconsistent.String():    StyleError,
}

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

// contradictionLabel stands in for the anonymous inconsistency key.
const contradictionLabel = "(contradiction)"

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printStats prints a one-line summary such as "3 items · 1200x200 · cached".
func printStats(parts []string, cached bool) {
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	line := "  "
	for _, part := range parts {
		line += StyleDim.Render(part) + StyleDim.Render(" · ")
	}
	fmt.Println(line + statusStyle.Render(status))
}

// formatValue prints a value without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// solutionRows lists every unknown of sol sorted by name.
func solutionRows(sol solver.Solution) [][]string {
	type row struct {
		name   string
		status solver.Status
	}
	var rows []row
	for name := range sol.Assignments {
		rows = append(rows, row{name, solver.Solved})
	}
	for name := range sol.Underdetermined {
		rows = append(rows, row{name, solver.Underdetermined})
	}
	for name := range sol.Inconsistencies {
		rows = append(rows, row{name, solver.Inconsistent})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	out := make([][]string, len(rows))
	for i, r := range rows {
		name, value := r.name, ""
		if name == solver.Anonymous {
			name = contradictionLabel
		}
		if v, ok := sol.Value(r.name); ok && r.status == solver.Solved {
			value = formatValue(v)
		}
		out[i] = []string{name, r.status.String(), value}
	}
	return out
}

// solutionTable renders sol as a bordered table.
func solutionTable(sol solver.Solution) string {
	rows := solutionRows(sol)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Unknown", "Status", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if col != 1 || row < 0 || row >= len(rows) {
				return lipgloss.NewStyle()
			}
			return statusStyles[rows[row][1]]
		}).
		Render()
}

// itemTable renders item geometry as a bordered table.
func itemTable(items []layout.Item) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			it.Name,
			strconv.Itoa(it.Left), strconv.Itoa(it.Top),
			strconv.Itoa(it.Width) + " " + policyMark(it.WidthPolicy),
			strconv.Itoa(it.Height) + " " + policyMark(it.HeightPolicy),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Item", "Left", "Top", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func policyMark(p layout.Policy) string {
	if p == layout.Expanding {
		return "↔"
	}
	return "·"
}

// Package ui renders the calculator to a terminal: plain-text output with
// optional styling, bordered tables, and the calculation report.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used for terminal output
type Styles struct {
	Heading    lipgloss.Style
	Prompt     lipgloss.Style
	Invalid    lipgloss.Style
	Border     lipgloss.Style
	Summary    lipgloss.Style
	Prior      lipgloss.Style
	Likelihood lipgloss.Style
	Evidence   lipgloss.Style
	Posterior  lipgloss.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	return Styles{
		Heading:    lipgloss.NewStyle().Bold(true),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Invalid:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Border:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Summary:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Prior:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Likelihood: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Evidence:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Posterior:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
	styles    Styles
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
		styles:    DefaultStyles(),
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// style applies a style if enabled
func (w *Writer) style(s lipgloss.Style, text string) string {
	if w.noColor {
		return text
	}
	return s.Render(text)
}

// Line writes text verbatim with newline
func (w *Writer) Line(text string) {
	fmt.Fprintln(w.out, text)
}

// Blank writes an empty line
func (w *Writer) Blank() {
	fmt.Fprintln(w.out)
}

// Prose writes explanatory text, suppressed at verbosity 0
func (w *Writer) Prose(lines ...string) {
	if w.verbosity < 1 {
		return
	}
	for _, l := range lines {
		w.Line(l)
	}
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Line(w.style(w.styles.Heading, title))
}

// Prompt prints a question
func (w *Writer) Prompt(question string) {
	w.Line(w.style(w.styles.Prompt, question))
}

// Invalid prints a rejection notice for a bad answer
func (w *Writer) Invalid(message string) {
	w.Line(w.style(w.styles.Invalid, message))
}

// Table renders a bordered ASCII table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	styles  []lipgloss.Style
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddStyledRow adds a row whose first cell is rendered with style
func (t *Table) AddStyledRow(style lipgloss.Style, cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
	t.styles = append(t.styles, style)
}

// Render prints the table
func (t *Table) Render() {
	border := "+"
	for _, w := range t.widths {
		border += strings.Repeat("-", w+2) + "+"
	}
	border = t.w.style(t.w.styles.Border, border)

	t.w.Line(border)
	t.w.Line(t.line(t.headers, t.w.styles.Heading, true))
	t.w.Line(border)
	for i, row := range t.rows {
		t.w.Line(t.line(row, t.styles[i], false))
	}
	t.w.Line(border)
}

func (t *Table) line(cells []string, style lipgloss.Style, allCells bool) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", t.widths[i]-len(cell))
		if i == 0 || allCells {
			padded = t.w.style(style, padded)
		}
		b.WriteString(" " + padded + " |")
	}
	return b.String()
}

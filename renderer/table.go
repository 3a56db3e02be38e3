// Package renderer turns folio reports into markdown, and into plain tables
// that the command line can print in a terminal.
package renderer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/folio"
)

// Align is the alignment of a table column.
type Align int

const (
	Left Align = iota
	Right
	Center
)

// Table is a titled table of pre-formatted cells.
type Table struct {
	Title  string
	Header []string
	Align  []Align // Align defaults to Left for missing columns.
	Rows   [][]string
}

func (t *Table) append(cells ...string) { t.Rows = append(t.Rows, cells) }

// escape protects a cell content from breaking the markdown table.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func (t Table) separator(i int) string {
	a := Left
	if i < len(t.Align) {
		a = t.Align[i]
	}
	switch a {
	case Right:
		return "---:"
	case Center:
		return ":---:"
	default:
		return ":---"
	}
}

// Markdown writes the table as a GitHub flavored markdown table, preceded by
// its title as a level 2 heading.
func (t Table) Markdown(w io.Writer) {
	if t.Title != "" {
		fmt.Fprintf(w, "## %s\n\n", t.Title)
	}
	if len(t.Rows) == 0 {
		fmt.Fprint(w, "_none_\n\n")
		return
	}
	header := make([]string, len(t.Header))
	seps := make([]string, len(t.Header))
	for i, h := range t.Header {
		header[i] = escape(h)
		seps[i] = t.separator(i)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(w, "|%s|\n", strings.Join(seps, "|"))
	for _, row := range t.Rows {
		cells := make([]string, len(t.Header))
		for i := range cells {
			if i < len(row) {
				cells[i] = escape(row[i])
			}
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
	fmt.Fprintln(w)
}

// Markdown renders a document made of a level 1 title, an optional
// paragraph and tables.
func Markdown(title, intro string, tables ...Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if intro != "" {
		fmt.Fprintf(&b, "%s\n\n", intro)
	}
	for _, t := range tables {
		t.Markdown(&b)
	}
	return b.String()
}

// na is printed for values that cannot be computed.
const na = "n/a"

func money(v float64, currency string) string { return folio.M(v, currency).String() }

func signedMoney(v float64, currency string) string { return folio.M(v, currency).SignedString() }

func pct(v float64) string { return folio.Percent(v).String() }

func signedPct(v float64) string { return folio.Percent(v).SignedString() }

// quantity prints a quantity without trailing zeros, crypto quantities can
// have up to 8 decimals.
func quantity(v float64) string {
	return strconv.FormatFloat(folio.Round(v, 8), 'f', -1, 64)
}

func day(t time.Time) string {
	if t.IsZero() {
		return na
	}
	return t.Format(time.DateOnly)
}

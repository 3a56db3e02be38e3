package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/folio/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Output formats.
const (
	formatMarkdown = "markdown"
	formatRaw      = "raw" // raw markdown, without terminal styling
	formatTable    = "table"
	formatJSON     = "json"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printError prints err to stderr with a styled prefix.
func printError(context string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error "+context+":"), err)
}

// printMarkdown renders markdown for the terminal with glamour.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		logrus.WithError(err).Debug("cannot create markdown renderer")
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logrus.WithError(err).Debug("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func tableAlign(a renderer.Align) int {
	switch a {
	case renderer.Right:
		return tablewriter.ALIGN_RIGHT
	case renderer.Center:
		return tablewriter.ALIGN_CENTER
	default:
		return tablewriter.ALIGN_LEFT
	}
}

// printTables prints tables with box drawing, for terminals without
// markdown rendering.
func printTables(w io.Writer, title string, tables ...renderer.Table) {
	fmt.Fprintln(w, titleStyle.Render(title))
	for _, t := range tables {
		fmt.Fprintln(w)
		if t.Title != "" {
			fmt.Fprintln(w, titleStyle.Render(t.Title))
		}
		if len(t.Rows) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("none"))
			continue
		}
		align := make([]int, len(t.Header))
		for i := range align {
			a := renderer.Left
			if i < len(t.Align) {
				a = t.Align[i]
			}
			align[i] = tableAlign(a)
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader(t.Header)
		table.SetAutoFormatHeaders(false)
		table.SetBorder(true)
		table.SetRowLine(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetColumnAlignment(align)
		table.SetCenterSeparator("│")
		table.SetColumnSeparator("│")
		table.SetRowSeparator("─")
		table.SetHeaderLine(true)
		table.AppendBulk(t.Rows)
		table.Render()
	}
}

// printJSON prints v as indented json.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// report prints a report in the requested format. md is only called for
// the markdown formats.
func report(format, title string, data any, md func() string, tables func() []renderer.Table) error {
	switch format {
	case formatJSON:
		return printJSON(os.Stdout, data)
	case formatTable:
		printTables(os.Stdout, title, tables()...)
	case formatRaw:
		fmt.Print(md())
	case formatMarkdown, "":
		printMarkdown(md())
	default:
		return fmt.Errorf("unknown format %q (use markdown, raw, table or json)", format)
	}
	return nil
}

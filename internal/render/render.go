// Package render writes ledger views to a terminal: aligned tables, summary
// cards, colored badges and pagination footers. All output goes through an
// io.Writer so commands and tests share the same path.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mystra-dev/ledgerscope/internal/format"
)

// Card is one summary figure with its label.
type Card struct {
	Label string
	Value string
}

// Renderer carries the output writer and display configuration.
type Renderer struct {
	w            io.Writer
	currencyCode string
	dateLayout   string
	color        bool
}

// New creates a Renderer. color controls whether badges emit ANSI styles.
func New(w io.Writer, currencyCode, dateLayout string, color bool) *Renderer {
	return &Renderer{w: w, currencyCode: currencyCode, dateLayout: dateLayout, color: color}
}

// Currency renders an amount with the configured currency code.
func (r *Renderer) Currency(amount string) string {
	return format.Currency(r.currencyCode, amount)
}

// Date renders a server date with the configured layout.
func (r *Renderer) Date(s string) string {
	return format.Date(s, r.dateLayout)
}

// Badge renders text in the given ANSI style when color is enabled.
func (r *Renderer) Badge(text, color string) string {
	if !r.color || color == "" {
		return text
	}
	return color + text + format.ColorReset
}

// Title prints a view heading.
func (r *Renderer) Title(title string) {
	fmt.Fprintf(r.w, "%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// Cards prints summary figures side by side.
func (r *Renderer) Cards(cards []Card) {
	tw := tabwriter.NewWriter(r.w, 0, 4, 3, ' ', 0)
	for _, c := range cards {
		fmt.Fprintf(tw, "%s:\t%s\n", c.Label, c.Value)
	}
	tw.Flush()
	fmt.Fprintln(r.w)
}

// Table prints an aligned table with a header row. An empty row set prints a
// placeholder line instead.
func (r *Renderer) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, "(no records)")
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// PaginationFooter prints the ellipsis-windowed pager line. Suppressed
// entirely when there is at most one page.
func (r *Renderer) PaginationFooter(current, totalPages, total int) {
	if totalPages <= 1 {
		return
	}
	parts := make([]string, 0, totalPages+2)
	for _, item := range format.Window(current, totalPages) {
		switch {
		case item.Gap:
			parts = append(parts, "...")
		case item.Page == current:
			parts = append(parts, "["+strconv.Itoa(item.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(item.Page))
		}
	}
	fmt.Fprintf(r.w, "\nPage %s of %d (%d records)", strings.Join(parts, " "), totalPages, total)
	hints := []string{}
	if current > 1 {
		hints = append(hints, "p: prev")
	}
	if current < totalPages {
		hints = append(hints, "n: next")
	}
	if len(hints) > 0 {
		fmt.Fprintf(r.w, "  %s", strings.Join(hints, ", "))
	}
	fmt.Fprintln(r.w)
}

// Error prints a retryable error banner.
func (r *Renderer) Error(msg string) {
	fmt.Fprintf(r.w, "error: %s\n", msg)
	fmt.Fprintln(r.w, "retry with r (interactive) or re-run the command")
}

// NotConfigured prints guidance for the unconfigured state.
func (r *Renderer) NotConfigured() {
	fmt.Fprintln(r.w, "ledgerscope is not configured.")
	fmt.Fprintln(r.w, "run: ledgerscope settings set --tenant-id <id> --token <bearer-token>")
}

// Loading prints the in-flight indicator.
func (r *Renderer) Loading() {
	fmt.Fprintln(r.w, "loading...")
}

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mystra-dev/ledgerscope/internal/fetch"
)

// refreshQuiet absorbs bursts of refresh keystrokes into one refetch.
const refreshQuiet = 150 * time.Millisecond

// pageCount derives the page count for payloads that report only a record
// total. Server-paginated payloads carry their own totalPages instead.
func pageCount(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// interactiveLoop drives a ledger view from line input: n/p move pages,
// g N jumps, /term searches (resetting to page 1), r refetches, q quits.
// show renders one state and reports the page count it saw; the loop uses it
// to keep navigation inside 1..totalPages. A zero count (error, empty data)
// leaves forward navigation open so a retry can still move.
func interactiveLoop[T any](ctx context.Context, out io.Writer, in io.Reader, f *fetch.Fetcher[T], show func(fetch.State[T]) int) error {
	deb := fetch.NewDebouncer(refreshQuiet)
	defer deb.Stop()

	totalPages := show(f.Fetch(ctx))
	fmt.Fprint(out, "> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q":
			return nil
		case line == "n":
			if totalPages > 0 && f.Page() >= totalPages {
				fmt.Fprintln(out, "already on the last page")
				break
			}
			f.SetPage(f.Page() + 1)
			totalPages = show(f.Fetch(ctx))
		case line == "p":
			if f.Page() <= 1 {
				fmt.Fprintln(out, "already on the first page")
				break
			}
			f.SetPage(f.Page() - 1)
			totalPages = show(f.Fetch(ctx))
		case strings.HasPrefix(line, "g "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "g ")))
			if err != nil {
				fmt.Fprintln(out, "usage: g <page>")
				break
			}
			if totalPages > 0 && n > totalPages {
				n = totalPages
			}
			f.SetPage(n)
			totalPages = show(f.Fetch(ctx))
		case strings.HasPrefix(line, "/"):
			f.SetSearch(strings.TrimPrefix(line, "/"))
			totalPages = show(f.Fetch(ctx))
		case line == "r":
			// The debounce timer runs the refetch; rendering stays on this
			// goroutine so output never interleaves with the prompt.
			done := make(chan fetch.State[T], 1)
			deb.Trigger(func() { done <- f.Refetch(ctx) })
			totalPages = show(<-done)
		case line == "":
			// ignore
		default:
			fmt.Fprintln(out, "commands: n (next), p (prev), g <page>, /<search>, r (refresh), q (quit)")
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

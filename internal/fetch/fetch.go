// Package fetch holds the shared control flow behind every ledger view:
// guard on configuration, track loading/error state, reset to the first page
// when a filter narrows, and apply only the newest in-flight response.
package fetch

import (
	"context"
	"errors"
	"sync"
)

// ErrNotConfigured is surfaced when a fetch is attempted before a tenant ID
// and bearer token are set. No network call is made in that state.
var ErrNotConfigured = errors.New("API settings are not configured: set a tenant ID and bearer token first")

// fallbackMessage is used when a fetch fails without a usable message.
const fallbackMessage = "failed to fetch data"

// HeaderSource supplies per-request auth headers. *settings.Store satisfies it.
type HeaderSource interface {
	Headers() map[string]string
	IsConfigured() bool
}

// Func performs one fetch for the current page and filters.
type Func[T any] func(ctx context.Context, page int, filters map[string]string, headers map[string]string) (*T, error)

// State is a snapshot of a Fetcher's visible state. Data survives a failed
// refetch so the last good page stays on screen next to the error.
type State[T any] struct {
	Data    *T
	Err     string
	Loading bool
}

// Fetcher drives one logical data slot. Every issued request carries a
// sequence number; a completion writes state only while it is still the
// newest, so overlapping fetches can never leave a stale page visible.
type Fetcher[T any] struct {
	mu      sync.Mutex
	auth    HeaderSource
	call    Func[T]
	page    int
	search  string
	filters map[string]string
	seq     uint64
	state   State[T]
}

// New creates a Fetcher starting on page 1 with no filters.
func New[T any](auth HeaderSource, call Func[T]) *Fetcher[T] {
	return &Fetcher[T]{
		auth:    auth,
		call:    call,
		page:    1,
		filters: map[string]string{},
	}
}

// Page returns the current 1-indexed page.
func (f *Fetcher[T]) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// SetPage moves to page n (floored at 1). Out-of-range pages are prevented by
// the rendering layer disabling prev/next, not clamped here.
func (f *Fetcher[T]) SetPage(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n < 1 {
		n = 1
	}
	f.page = n
}

// Search returns the current search term.
func (f *Fetcher[T]) Search() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.search
}

// SetSearch updates the search term. A changed term resets to page 1 so a
// narrowed result set never leaves the view on an out-of-range page.
func (f *Fetcher[T]) SetSearch(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if term != f.search {
		f.search = term
		f.page = 1
	}
}

// Filter returns the current value for a filter key.
func (f *Fetcher[T]) Filter(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters[key]
}

// SetFilter updates one filter. A changed value resets to page 1.
func (f *Fetcher[T]) SetFilter(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.filters[key] == value {
		return
	}
	if value == "" {
		delete(f.filters, key)
	} else {
		f.filters[key] = value
	}
	f.page = 1
}

// State returns the current state snapshot.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fetch runs one request with the current page, filters and auth headers and
// returns the resulting state. When unconfigured it records ErrNotConfigured
// and returns without a network call.
func (f *Fetcher[T]) Fetch(ctx context.Context) State[T] {
	f.mu.Lock()
	if !f.auth.IsConfigured() {
		f.state.Loading = false
		f.state.Err = ErrNotConfigured.Error()
		st := f.state
		f.mu.Unlock()
		return st
	}
	f.seq++
	seq := f.seq
	f.state.Loading = true
	f.state.Err = ""
	page := f.page
	filters := make(map[string]string, len(f.filters))
	for k, v := range f.filters {
		filters[k] = v
	}
	f.mu.Unlock()

	data, err := f.call(ctx, page, filters, f.auth.Headers())

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		// A newer request was issued while this one was in flight.
		return f.state
	}
	f.state.Loading = false
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackMessage
		}
		f.state.Err = msg
		return f.state
	}
	f.state.Data = data
	return f.state
}

// Refetch re-runs the fetch with unchanged parameters, for explicit retries.
func (f *Fetcher[T]) Refetch(ctx context.Context) State[T] {
	return f.Fetch(ctx)
}

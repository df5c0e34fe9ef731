package format

// windowDelta is how many neighbors of the current page are always shown.
const windowDelta = 2

// PageItem is one slot of a pagination window: either a page number or a gap
// marker standing in for elided pages.
type PageItem struct {
	Page int
	Gap  bool
}

// Window computes the ellipsis-windowed page list for a pager footer. The
// first and last pages are always present, along with every page within
// windowDelta of current; gaps wider than one page collapse to a marker.
// For a single page the window is just [1]; callers suppress the footer for
// totalPages <= 1.
func Window(current, total int) []PageItem {
	if total <= 1 {
		return []PageItem{{Page: 1}}
	}

	items := []PageItem{{Page: 1}}
	if current-windowDelta > 2 {
		items = append(items, PageItem{Gap: true})
	}

	for i := max(2, current-windowDelta); i <= min(total-1, current+windowDelta); i++ {
		items = append(items, PageItem{Page: i})
	}

	if current+windowDelta < total-1 {
		items = append(items, PageItem{Gap: true})
	}
	return append(items, PageItem{Page: total})
}

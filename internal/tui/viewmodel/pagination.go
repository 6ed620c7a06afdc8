// Package viewmodel contains pure presentation logic for the TUI
// components: pagination arithmetic, form input parsing, and chart row
// shaping. Nothing here touches the network or the terminal.
package viewmodel

import "fmt"

// Pagination is the position within a server-paginated window.
type Pagination struct {
	Current int
	Total   int
}

// CanPrev reports whether a previous page exists. The control bound to it
// is disabled exactly when this is false.
func (p Pagination) CanPrev() bool {
	return p.Total >= 1 && p.Current > 1
}

// CanNext reports whether a next page exists.
func (p Pagination) CanNext() bool {
	return p.Total >= 1 && p.Current < p.Total
}

// Clamp bounds a requested page number to [1, Total]. A window that has
// not loaded yet (Total < 1) clamps everything to page 1.
func (p Pagination) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if p.Total >= 1 && page > p.Total {
		return p.Total
	}
	return page
}

// Label renders the "Page X of Y" indicator.
func (p Pagination) Label() string {
	total := p.Total
	if total < 1 {
		total = 1
	}
	current := p.Current
	if current < 1 {
		current = 1
	}
	return fmt.Sprintf("Page %d of %d", current, total)
}

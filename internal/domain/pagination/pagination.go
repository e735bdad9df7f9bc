// Package pagination implements cursor-based connections over materialized,
// chronologically ordered lists. Creation timestamps double as cursors, so a
// page can be resumed from any previously returned edge.
package pagination

import (
	"strings"
	"time"
)

// Node is any entity that can appear in a connection. The cursor of a node is
// its creation timestamp; the input list must already be sorted ascending by it.
type Node interface {
	CursorTime() time.Time
}

// Searchable is implemented by nodes that participate in connection search.
// Each term is matched case-insensitively as a substring.
type Searchable interface {
	SearchTerms() []string
}

// Request carries the paging arguments of a connection field.
// Forward paging uses First/After, backward paging uses Last/Before.
// When both directions are supplied, forward wins.
type Request struct {
	First  *int       `json:"first" query:"first"`
	After  *time.Time `json:"after" query:"after"`
	Last   *int       `json:"last" query:"last"`
	Before *time.Time `json:"before" query:"before"`
	Search string     `json:"search" query:"search"`
}

// Edge pairs a node with its cursor.
type Edge[T Node] struct {
	Cursor time.Time `json:"cursor"`
	Node   T         `json:"node"`
}

// PageInfo describes the returned page relative to the full list.
// StartCursor is the oldest edge's cursor and EndCursor the newest, so a
// forward continuation passes EndCursor as After. Both are nil on an empty page.
type PageInfo struct {
	StartCursor     *time.Time `json:"startCursor"`
	EndCursor       *time.Time `json:"endCursor"`
	HasPreviousPage bool       `json:"hasPreviousPage"`
	HasNextPage     bool       `json:"hasNextPage"`
}

// Connection is the pagination envelope returned by every list field.
type Connection[T Node] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Paginate slices a page out of list according to req and wraps it in a
// Connection. The list must be sorted ascending by creation time.
//
// Edges are ordered newest-to-oldest within the page. Page-info flags are
// evaluated against the searched view of the list, never the raw input, so
// they stay consistent with the returned edges. Unmatched After/Before
// cursors degrade to "start of list" and "end of list" respectively; a
// malformed request degrades to an empty page rather than failing.
func Paginate[T Node](list []T, req Request) Connection[T] {
	items := list
	if req.Search != "" {
		items = Filter(list, req.Search)
	}

	var window []T
	switch {
	case req.First != nil:
		window = sliceForward(items, req.After, *req.First)
	case req.Last != nil:
		window = sliceBackward(items, req.Before, *req.Last)
	}

	if len(window) == 0 {
		return Connection[T]{Edges: []Edge[T]{}}
	}

	// The window is ascending; emit edges newest-first.
	edges := make([]Edge[T], 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		edges = append(edges, Edge[T]{Cursor: window[i].CursorTime(), Node: window[i]})
	}

	start := window[0].CursorTime()           // oldest edge
	end := window[len(window)-1].CursorTime() // newest edge

	return Connection[T]{
		Edges: edges,
		PageInfo: PageInfo{
			StartCursor:     &start,
			EndCursor:       &end,
			HasNextPage:     anyAfter(items, end),
			HasPreviousPage: anyBefore(items, start),
		},
	}
}

// Filter keeps the items whose search terms contain text as a
// case-insensitive substring. Items that expose no search terms never match.
func Filter[T Node](list []T, text string) []T {
	needle := strings.ToLower(text)

	matched := make([]T, 0, len(list))
	for _, item := range list {
		searchable, ok := any(item).(Searchable)
		if !ok {
			continue
		}
		for _, term := range searchable.SearchTerms() {
			if strings.Contains(strings.ToLower(term), needle) {
				matched = append(matched, item)

				break
			}
		}
	}

	return matched
}

// sliceForward takes up to first items following the item whose cursor equals
// after. A nil or unmatched after starts from the beginning.
func sliceForward[T Node](items []T, after *time.Time, first int) []T {
	if first <= 0 {
		return nil
	}

	start := indexOfCursor(items, after) + 1
	end := min(start+first, len(items))

	return items[start:end]
}

// sliceBackward takes up to last items preceding the item whose cursor equals
// before. A nil or unmatched before anchors at the end of the list.
func sliceBackward[T Node](items []T, before *time.Time, last int) []T {
	if last <= 0 {
		return nil
	}

	end := len(items)
	if idx := indexOfCursor(items, before); before != nil && idx >= 0 {
		end = idx
	}
	start := max(end-last, 0)

	return items[start:end]
}

// indexOfCursor returns the index of the item whose creation time equals the
// cursor, or -1 when the cursor is nil or matches nothing. Timestamps are
// compared with time.Time.Equal so representation differences (monotonic
// clock, location) never split otherwise equal cursors.
func indexOfCursor[T Node](items []T, cursor *time.Time) int {
	if cursor == nil {
		return -1
	}
	for i, item := range items {
		if item.CursorTime().Equal(*cursor) {
			return i
		}
	}

	return -1
}

func anyAfter[T Node](items []T, t time.Time) bool {
	for _, item := range items {
		if item.CursorTime().After(t) {
			return true
		}
	}

	return false
}

func anyBefore[T Node](items []T, t time.Time) bool {
	for _, item := range items {
		if item.CursorTime().Before(t) {
			return true
		}
	}

	return false
}

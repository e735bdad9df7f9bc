package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	name      string
	tags      []string
	createdAt time.Time
}

func (i testItem) CursorTime() time.Time { return i.createdAt }

func (i testItem) SearchTerms() []string {
	terms := []string{i.name}

	return append(terms, i.tags...)
}

// plainItem has no search terms, so it can never match a search.
type plainItem struct {
	createdAt time.Time
}

func (i plainItem) CursorTime() time.Time { return i.createdAt }

func newItems(n int) ([]testItem, []time.Time) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	items := make([]testItem, 0, n)
	times := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		items = append(items, testItem{name: "item", createdAt: ts})
		times = append(times, ts)
	}

	return items, times
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func cursors[T Node](conn Connection[T]) []time.Time {
	out := make([]time.Time, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		out = append(out, e.Cursor)
	}

	return out
}

func TestPaginateForward(t *testing.T) {
	t.Parallel()

	items, ts := newItems(5)

	t.Run("first page is the newest-first window from the start", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{First: intPtr(2)})

		require.Len(t, conn.Edges, 2)
		assert.Equal(t, []time.Time{ts[1], ts[0]}, cursors(conn))
		require.NotNil(t, conn.PageInfo.StartCursor)
		require.NotNil(t, conn.PageInfo.EndCursor)
		assert.Equal(t, ts[0], *conn.PageInfo.StartCursor)
		assert.Equal(t, ts[1], *conn.PageInfo.EndCursor)
		assert.True(t, conn.PageInfo.HasNextPage)
		assert.False(t, conn.PageInfo.HasPreviousPage)
	})

	t.Run("continuation from end cursor neither overlaps nor skips", func(t *testing.T) {
		t.Parallel()

		first := Paginate(items, Request{First: intPtr(2)})
		second := Paginate(items, Request{First: intPtr(2), After: first.PageInfo.EndCursor})

		assert.Equal(t, []time.Time{ts[3], ts[2]}, cursors(second))
		assert.True(t, second.PageInfo.HasNextPage)
		assert.True(t, second.PageInfo.HasPreviousPage)

		third := Paginate(items, Request{First: intPtr(2), After: second.PageInfo.EndCursor})

		assert.Equal(t, []time.Time{ts[4]}, cursors(third))
		assert.False(t, third.PageInfo.HasNextPage)
		assert.True(t, third.PageInfo.HasPreviousPage)
	})

	t.Run("same request twice yields the same page", func(t *testing.T) {
		t.Parallel()

		req := Request{First: intPtr(3), After: timePtr(ts[0])}

		assert.Equal(t, Paginate(items, req), Paginate(items, req))
	})

	t.Run("unmatched after restarts from the beginning", func(t *testing.T) {
		t.Parallel()

		stranger := timePtr(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
		conn := Paginate(items, Request{First: intPtr(2), After: stranger})

		assert.Equal(t, []time.Time{ts[1], ts[0]}, cursors(conn))
	})

	t.Run("first larger than the list returns everything", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{First: intPtr(100)})

		assert.Len(t, conn.Edges, 5)
		assert.False(t, conn.PageInfo.HasNextPage)
		assert.False(t, conn.PageInfo.HasPreviousPage)
	})

	t.Run("first wins when both directions are supplied", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{First: intPtr(2), Last: intPtr(3)})

		assert.Equal(t, []time.Time{ts[1], ts[0]}, cursors(conn))
	})
}

func TestPaginateBackward(t *testing.T) {
	t.Parallel()

	items, ts := newItems(5)

	t.Run("last page anchors at the end of the list", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{Last: intPtr(2)})

		assert.Equal(t, []time.Time{ts[4], ts[3]}, cursors(conn))
		assert.False(t, conn.PageInfo.HasNextPage)
		assert.True(t, conn.PageInfo.HasPreviousPage)
	})

	t.Run("before slices the items preceding the cursor", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{Last: intPtr(2), Before: timePtr(ts[3])})

		assert.Equal(t, []time.Time{ts[2], ts[1]}, cursors(conn))
		assert.True(t, conn.PageInfo.HasNextPage)
		assert.True(t, conn.PageInfo.HasPreviousPage)
	})

	t.Run("unmatched before anchors at the end", func(t *testing.T) {
		t.Parallel()

		stranger := timePtr(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))
		conn := Paginate(items, Request{Last: intPtr(2), Before: stranger})

		assert.Equal(t, []time.Time{ts[4], ts[3]}, cursors(conn))
	})
}

func TestPaginateEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty list yields nil cursors and no pages", func(t *testing.T) {
		t.Parallel()

		conn := Paginate([]testItem{}, Request{First: intPtr(5)})

		assert.Empty(t, conn.Edges)
		assert.Nil(t, conn.PageInfo.StartCursor)
		assert.Nil(t, conn.PageInfo.EndCursor)
		assert.False(t, conn.PageInfo.HasNextPage)
		assert.False(t, conn.PageInfo.HasPreviousPage)
	})

	t.Run("request without a page size yields an empty page", func(t *testing.T) {
		t.Parallel()

		items, _ := newItems(3)
		conn := Paginate(items, Request{})

		assert.Empty(t, conn.Edges)
		assert.Nil(t, conn.PageInfo.StartCursor)
	})

	t.Run("non-positive page sizes yield an empty page", func(t *testing.T) {
		t.Parallel()

		items, _ := newItems(3)

		assert.Empty(t, Paginate(items, Request{First: intPtr(0)}).Edges)
		assert.Empty(t, Paginate(items, Request{Last: intPtr(-1)}).Edges)
	})
}

func TestPaginateSearch(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	at := func(i int) time.Time { return base.Add(time.Duration(i) * time.Minute) }

	items := []testItem{
		{name: "red scarf", tags: []string{"wears"}, createdAt: at(0)},
		{name: "blue mug", tags: []string{"kitchen"}, createdAt: at(1)},
		{name: "phone case", tags: []string{"red", "gadgets"}, createdAt: at(2)},
		{name: "notebook", tags: []string{"books"}, createdAt: at(3)},
	}

	t.Run("matches name and tags case-insensitively", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{First: intPtr(10), Search: "RED"})

		require.Len(t, conn.Edges, 2)
		assert.Equal(t, "phone case", conn.Edges[0].Node.name)
		assert.Equal(t, "red scarf", conn.Edges[1].Node.name)
	})

	t.Run("page info reflects the searched view", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{First: intPtr(1), Search: "red"})

		require.Len(t, conn.Edges, 1)
		assert.Equal(t, "red scarf", conn.Edges[0].Node.name)
		assert.True(t, conn.PageInfo.HasNextPage)
		assert.False(t, conn.PageInfo.HasPreviousPage)

		next := Paginate(items, Request{First: intPtr(1), Search: "red", After: conn.PageInfo.EndCursor})

		require.Len(t, next.Edges, 1)
		assert.Equal(t, "phone case", next.Edges[0].Node.name)
		assert.False(t, next.PageInfo.HasNextPage)
	})

	t.Run("no matches behaves like an empty list", func(t *testing.T) {
		t.Parallel()

		conn := Paginate(items, Request{First: intPtr(5), Search: "submarine"})

		assert.Empty(t, conn.Edges)
		assert.Nil(t, conn.PageInfo.StartCursor)
	})

	t.Run("items without search terms never match", func(t *testing.T) {
		t.Parallel()

		plain := []plainItem{{createdAt: at(0)}, {createdAt: at(1)}}
		conn := Paginate(plain, Request{First: intPtr(5), Search: "anything"})

		assert.Empty(t, conn.Edges)
	})
}

package reservation

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200

	// MaxOffset is the largest row offset storage accepts.
	MaxOffset = math.MaxInt32
)

// Query selects reservations with offset pagination.
//
// Unset values and their substitutes:
//   - UserID, ResourceID: "" means no filter on the field (never "match empty").
//   - Status: StatusUnknown or "" becomes StatusPending.
//   - Start, End: both zero means no window filter. Otherwise they must form a
//     valid window and rows overlapping [Start, End) are returned.
//   - Page: 1-based, values below 1 become 1. Pages whose offset would pass
//     MaxOffset are clamped to the last addressable page, which is empty.
//   - PageSize: values below 1 become DefaultPageSize, values above MaxPageSize are capped.
//   - Desc: false orders by id ascending.
type Query struct {
	UserID     string
	ResourceID string
	Status     Status
	Start      time.Time
	End        time.Time
	Page       int
	PageSize   int
	Desc       bool
}

// Validate checks the optional window only.
func (q Query) Validate() error {
	if q.Start.IsZero() && q.End.IsZero() {
		return nil
	}
	return ValidateWindow(q.Start, q.End)
}

// Normalize validates q and applies the defaults documented on Query.
func (q Query) Normalize() (Query, error) {
	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	q.Status = q.Status.OrDefault()
	if q.Page < 1 {
		q.Page = 1
	}
	q.PageSize = NormalizePageSize(q.PageSize)
	if last := MaxOffset/q.PageSize + 1; q.Page > last {
		q.Page = last
	}
	return q, nil
}

// Window returns the optional window filter.
func (q Query) Window() (TimeSlot, bool) {
	if q.Start.IsZero() && q.End.IsZero() {
		return TimeSlot{}, false
	}
	slot, err := NewTimeSlot(q.Start, q.End)
	if err != nil {
		return TimeSlot{}, false
	}
	return slot, true
}

// Offset is (Page-1)*PageSize, capped at MaxOffset.
func (q Query) Offset() int {
	if q.Page < 1 || q.PageSize < 1 {
		return 0
	}
	if q.Page-1 > MaxOffset/q.PageSize {
		return MaxOffset
	}
	return (q.Page - 1) * q.PageSize
}

// Filter selects reservations with keyset pagination on id.
//
// UserID, ResourceID and Status follow the Query rules. Cursor is the last id
// seen; values below 1 start from the first row in the chosen direction.
// Rows strictly beyond Cursor are returned, at most PageSize of them.
type Filter struct {
	UserID     string
	ResourceID string
	Status     Status
	Cursor     int64
	PageSize   int
	Desc       bool
}

func (f Filter) Normalize() Filter {
	f.Status = f.Status.OrDefault()
	f.PageSize = NormalizePageSize(f.PageSize)
	if f.Cursor < 0 {
		f.Cursor = 0
	}
	return f
}

// Boundary is the exclusive id bound to compare against.
func (f Filter) Boundary() int64 {
	if f.Cursor > 0 {
		return f.Cursor
	}
	if f.Desc {
		return math.MaxInt64
	}
	return 0
}

func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Pager carries the keyset cursors around a Filter page. Prev is nil on the
// first page and Next is nil when no rows remain.
type Pager struct {
	Prev *int64
	Next *int64
}

// NewPager builds the pager for a page of ids fetched with one extra row.
// It returns the ids that belong to the page.
func NewPager(f Filter, ids []int64) ([]int64, *Pager) {
	pager := &Pager{}
	if f.Cursor > 0 && len(ids) > 0 {
		prev := ids[0]
		pager.Prev = &prev
	}
	if len(ids) > f.PageSize {
		ids = ids[:f.PageSize]
		next := ids[len(ids)-1]
		pager.Next = &next
	}
	return ids, pager
}

//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("normalizes to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		slot := mustSlot(t, base.In(tokyo), base.Add(time.Hour).In(tokyo))
		assert.Equal(t, time.UTC, slot.Start().Location())
		assert.True(t, base.Equal(slot.Start()))
		assert.Equal(t, time.Hour, slot.Duration())
	})

	t.Run("rejects invalid windows", func(t *testing.T) {
		for name, window := range map[string][2]time.Time{
			"zero start": {{}, base},
			"zero end":   {base, {}},
			"empty":      {base, base},
			"reversed":   {base.Add(time.Minute), base},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := reservation.NewTimeSlot(window[0], window[1])
				assert.True(t, errs.Is(err, errs.ErrInvalidTime), "got %v", err)
			})
		}
	})
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }
	slot := mustSlot(t, h(10), h(20))

	testCases := []struct {
		name     string
		other    reservation.TimeSlot
		expected bool
	}{
		{name: "identical", other: mustSlot(t, h(10), h(20)), expected: true},
		{name: "inside", other: mustSlot(t, h(12), h(13)), expected: true},
		{name: "covering", other: mustSlot(t, h(5), h(25)), expected: true},
		{name: "overlapping start", other: mustSlot(t, h(5), h(11)), expected: true},
		{name: "overlapping end", other: mustSlot(t, h(19), h(21)), expected: true},
		{name: "touching before", other: mustSlot(t, h(5), h(10)), expected: false},
		{name: "touching after", other: mustSlot(t, h(20), h(25)), expected: false},
		{name: "disjoint", other: mustSlot(t, h(30), h(31)), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slot.Overlaps(tc.other))
			assert.Equal(t, tc.expected, tc.other.Overlaps(slot), "overlap must be symmetric")
		})
	}
}

func TestTimeSlot_Contains(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	slot := mustSlot(t, start, start.Add(time.Hour))

	assert.True(t, slot.Contains(start))
	assert.True(t, slot.Contains(start.Add(59*time.Minute)))
	assert.False(t, slot.Contains(start.Add(time.Hour)))
	assert.False(t, slot.Contains(start.Add(-time.Nanosecond)))
}

func TestTimeSlot_Range(t *testing.T) {
	start := time.Date(2024, 1, 21, 19, 0, 0, 0, time.UTC)
	slot := mustSlot(t, start, start.Add(17*time.Hour))

	r := slot.Range()
	require.True(t, r.Valid)
	assert.Equal(t, pgtype.Inclusive, r.LowerType)
	assert.Equal(t, pgtype.Exclusive, r.UpperType)
	assert.True(t, start.Equal(r.Lower.Time))
	assert.True(t, start.Add(17*time.Hour).Equal(r.Upper.Time))
	assert.Equal(t, "[2024-01-21T19:00:00Z, 2024-01-22T12:00:00Z)", slot.String())
}

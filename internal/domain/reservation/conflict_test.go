//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConflictInfo(t *testing.T) {
	ts := func(s string) time.Time {
		v, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		return v
	}

	testCases := []struct {
		name     string
		detail   string
		expected *reservation.Conflict
	}{
		{
			name:   "server detail",
			detail: `Key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00")) conflicts with existing key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 22:00:00+00","2022-12-28 19:00:00+00")).`,
			expected: &reservation.Conflict{
				New: reservation.Window{ResourceID: "ocean-view-room-713", Start: ts("2022-12-26T22:00:00Z"), End: ts("2022-12-30T19:00:00Z")},
				Old: reservation.Window{ResourceID: "ocean-view-room-713", Start: ts("2022-12-25T22:00:00Z"), End: ts("2022-12-28T19:00:00Z")},
			},
		},
		{
			name:   "non-UTC offsets and fractional seconds",
			detail: `Key (resource_id, timespan)=(room-1, ["2024-01-22 17:00:00.5+09","2024-01-23 21:00:00+09:00")) conflicts with existing key (resource_id, timespan)=(room-1, ["2024-01-21 19:00:00+00","2024-01-22 12:00:00+00")).`,
			expected: &reservation.Conflict{
				New: reservation.Window{ResourceID: "room-1", Start: ts("2024-01-22T08:00:00.5Z"), End: ts("2024-01-23T12:00:00Z")},
				Old: reservation.Window{ResourceID: "room-1", Start: ts("2024-01-21T19:00:00Z"), End: ts("2024-01-22T12:00:00Z")},
			},
		},
		{
			name:   "quoted resource id",
			detail: `Key (resource_id, timespan)=("room-1", ["2024-01-01 00:00:00+00","2024-01-02 00:00:00+00")) conflicts with existing key (resource_id, timespan)=("room-1", ["2024-01-01 12:00:00+00","2024-01-03 00:00:00+00")).`,
			expected: &reservation.Conflict{
				New: reservation.Window{ResourceID: "room-1", Start: ts("2024-01-01T00:00:00Z"), End: ts("2024-01-02T00:00:00Z")},
				Old: reservation.Window{ResourceID: "room-1", Start: ts("2024-01-01T12:00:00Z"), End: ts("2024-01-03T00:00:00Z")},
			},
		},
		{
			name:   "unrelated text",
			detail: "Key (id)=(1) already exists.",
		},
		{
			name:   "empty",
			detail: "",
		},
		{
			name:   "only one clause",
			detail: `Key (resource_id, timespan)=(room-1, ["2024-01-01 00:00:00+00","2024-01-02 00:00:00+00")) conflicts with something.`,
		},
		{
			name:   "bad timestamp",
			detail: `Key (resource_id, timespan)=(room-1, ["yesterday","2024-01-02 00:00:00+00")) conflicts with existing key (resource_id, timespan)=(room-1, ["2024-01-01 12:00:00+00","2024-01-03 00:00:00+00")).`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := reservation.ParseConflictInfo(tc.detail)
			actual, ok := info.Conflict()

			if tc.expected == nil {
				assert.False(t, ok)
				assert.False(t, info.IsParsed())
				assert.Equal(t, "unparsed", info.String())
				return
			}
			require.True(t, ok)
			if diff := cmp.Diff(*tc.expected, actual); diff != "" {
				t.Errorf("conflict mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConflictError(t *testing.T) {
	t.Run("matches the conflict sentinel", func(t *testing.T) {
		err := errs.Wrap(reservation.NewConflictError(reservation.UnparsedConflict()), "reserve")

		assert.True(t, errs.Is(err, errs.ErrReservationConflict))
		assert.Equal(t, errs.KindConflictReservation, errs.KindOf(err))

		var conflict *reservation.ConflictError
		require.True(t, errs.As(err, &conflict))
		assert.False(t, conflict.Info.IsParsed())
	})

	t.Run("message includes parsed windows", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		info := reservation.ParsedConflict(reservation.Conflict{
			New: reservation.Window{ResourceID: "r", Start: start, End: start.Add(time.Hour)},
			Old: reservation.Window{ResourceID: "r", Start: start, End: start.Add(2 * time.Hour)},
		})

		err := reservation.NewConflictError(info)
		assert.Contains(t, err.Error(), errs.ErrReservationConflict.Error())
		assert.Contains(t, err.Error(), "2024-01-01T01:00:00Z")
	})
}

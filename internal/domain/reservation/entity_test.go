//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
	"github.com/zhangwenhan0216/reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Zero(t, actual.ID())
		assert.False(t, actual.IsPersisted())
		assert.Equal(t, "alice", actual.UserID())
		assert.Equal(t, "ocean-view-room-713", actual.ResourceID())
		assert.Equal(t, 17*time.Hour, actual.TimeSlot().Duration())
		assert.True(t, actual.IsPending())
	})

	t.Run("status defaults", func(t *testing.T) {
		for _, st := range []reservation.Status{"", reservation.StatusUnknown, reservation.Status("bogus")} {
			actual, err := builder.NewReservationBuilder().WithStatus(st).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusPending, actual.Status(), "status %q", st)
		}

		actual, err := builder.NewReservationBuilder().WithStatus(reservation.StatusBlocked).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusBlocked, actual.Status())
	})

	t.Run("field validation", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{
				name:   "empty user id",
				mutate: func(b *builder.ReservationBuilder) { b.UserID = "" },
				errIs:  errs.ErrInvalidUserID,
			},
			{
				name:   "whitespace user id is kept as is",
				mutate: func(b *builder.ReservationBuilder) { b.UserID = " " },
			},
			{
				name:   "empty resource id",
				mutate: func(b *builder.ReservationBuilder) { b.ResourceID = "" },
				errIs:  errs.ErrInvalidResourceID,
			},
			{
				name:   "whitespace resource id is kept as is",
				mutate: func(b *builder.ReservationBuilder) { b.ResourceID = " " },
			},
			{
				name:   "missing start",
				mutate: func(b *builder.ReservationBuilder) { b.Start = time.Time{} },
				errIs:  errs.ErrInvalidTime,
			},
			{
				name:   "missing end",
				mutate: func(b *builder.ReservationBuilder) { b.End = time.Time{} },
				errIs:  errs.ErrInvalidTime,
			},
			{
				name:   "start equals end",
				mutate: func(b *builder.ReservationBuilder) { b.WithWindow(start, start) },
				errIs:  errs.ErrInvalidTime,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.ReservationBuilder) { b.WithWindow(start.Add(time.Hour), start) },
				errIs:  errs.ErrInvalidTime,
			},
			{
				name:   "one second window",
				mutate: func(b *builder.ReservationBuilder) { b.WithWindow(start, start.Add(time.Second)) },
			},
		})
	})

	t.Run("ids are opaque", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.UserID = " "
			b.ResourceID = "\t"
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, " ", actual.UserID())
		assert.Equal(t, "\t", actual.ResourceID())
	})

	t.Run("validation order reports the first violation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "user id before resource id",
				mutate: func(b *builder.ReservationBuilder) {
					b.UserID = ""
					b.ResourceID = ""
				},
				errIs: errs.ErrInvalidUserID,
			},
			{
				name: "resource id before time",
				mutate: func(b *builder.ReservationBuilder) {
					b.ResourceID = ""
					b.Start = time.Time{}
				},
				errIs: errs.ErrInvalidResourceID,
			},
		})
	})
}

func TestReservation_ConflictsWith(t *testing.T) {
	base := time.Date(2024, 1, 21, 19, 0, 0, 0, time.UTC)
	existing := builder.NewReservationBuilder().WithWindow(base, base.Add(17*time.Hour)).BuildPersisted()

	testCases := []struct {
		name     string
		other    *reservation.Reservation
		conflict bool
	}{
		{
			name:     "overlapping window same resource",
			other:    builder.NewReservationBuilder().WithWindow(base.Add(13*time.Hour), base.Add(41*time.Hour)).BuildPersisted(),
			conflict: true,
		},
		{
			name:  "touching endpoints",
			other: builder.NewReservationBuilder().WithWindow(base.Add(17*time.Hour), base.Add(20*time.Hour)).BuildPersisted(),
		},
		{
			name:  "different resource",
			other: builder.NewReservationBuilder().WithResourceID("room-2").WithWindow(base, base.Add(time.Hour)).BuildPersisted(),
		},
		{
			name:  "blocked reservation does not hold the resource",
			other: builder.NewReservationBuilder().WithStatus(reservation.StatusBlocked).WithWindow(base, base.Add(time.Hour)).BuildPersisted(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflict, existing.ConflictsWith(tc.other))
			assert.Equal(t, tc.conflict, tc.other.ConflictsWith(existing))
		})
	}
}

func TestReservation_AssignID(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	res.AssignID(42)
	assert.Equal(t, int64(42), res.ID())
	assert.True(t, res.IsPersisted())
}

func TestValidateID(t *testing.T) {
	assert.ErrorIs(t, reservation.ValidateID(0), errs.ErrInvalidReservationID)
	assert.ErrorIs(t, reservation.ValidateID(-1), errs.ErrInvalidReservationID)
	assert.NoError(t, reservation.ValidateID(1))
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		in       string
		expected reservation.Status
	}{
		{in: "pending", expected: reservation.StatusPending},
		{in: " Confirmed ", expected: reservation.StatusConfirmed},
		{in: "BLOCKED", expected: reservation.StatusBlocked},
		{in: "unknown", expected: reservation.StatusUnknown},
		{in: "", expected: reservation.StatusUnknown},
		{in: "cancelled", expected: reservation.StatusUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.ParseStatus(tc.in))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/infra"
	"github.com/zhangwenhan0216/reservation/internal/infra/readstore"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
	"github.com/zhangwenhan0216/reservation/tests/common/builder"
	readstoremock "github.com/zhangwenhan0216/reservation/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewReservationBuilder().BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReservationReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation found",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				mock.EXPECT().GetReservation(ctx, gomock.Any(), row.ID).Return(row, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				mock.EXPECT().GetReservation(ctx, gomock.Any(), row.ID).Return(sqlc.RsvpReservation{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				mock.EXPECT().GetReservation(ctx, gomock.Any(), row.ID).Return(sqlc.RsvpReservation{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: unbounded timespan in row",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				broken := row
				broken.Timespan = pgtype.Range[pgtype.Timestamptz]{
					LowerType: pgtype.Unbounded,
					UpperType: pgtype.Unbounded,
					Valid:     true,
				}
				mock.EXPECT().GetReservation(ctx, gomock.Any(), row.ID).Return(broken, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, row.ID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			require.NotNil(t, result)
			assert.Equal(t, row.ID, result.ID())
			assert.Equal(t, row.ResourceID, result.ResourceID())
			assert.Equal(t, reservation.StatusPending, result.Status())
		})
	}
}

// =============================================================================
// FindByQuery Tests
// =============================================================================

func TestReadStore_FindByQuery(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	testCases := []struct {
		name      string
		query     reservation.Query
		expectArg func(t *testing.T, arg sqlc.QueryReservationsParams)
	}{
		{
			name:  "no window: range is NULL",
			query: reservation.Query{UserID: "alice", Status: reservation.StatusPending, Page: 1, PageSize: 10},
			expectArg: func(t *testing.T, arg sqlc.QueryReservationsParams) {
				assert.Equal(t, "alice", arg.UserID)
				assert.Equal(t, "", arg.ResourceID)
				assert.Equal(t, sqlc.RsvpReservationStatusPending, arg.Status)
				assert.False(t, arg.During.Valid)
				assert.Equal(t, int32(10), arg.PageSize)
				assert.Equal(t, int32(0), arg.PageOffset)
				assert.False(t, arg.IsDesc)
			},
		},
		{
			name: "window and third page descending",
			query: reservation.Query{
				ResourceID: "room-1",
				Status:     reservation.StatusConfirmed,
				Start:      start,
				End:        end,
				Page:       3,
				PageSize:   20,
				Desc:       true,
			},
			expectArg: func(t *testing.T, arg sqlc.QueryReservationsParams) {
				require.True(t, arg.During.Valid)
				assert.True(t, start.Equal(arg.During.Lower.Time))
				assert.True(t, end.Equal(arg.During.Upper.Time))
				assert.Equal(t, pgtype.Inclusive, arg.During.LowerType)
				assert.Equal(t, pgtype.Exclusive, arg.During.UpperType)
				assert.Equal(t, sqlc.RsvpReservationStatusConfirmed, arg.Status)
				assert.Equal(t, int32(40), arg.PageOffset)
				assert.True(t, arg.IsDesc)
			},
		},
		{
			name:  "last addressable page keeps a positive offset",
			query: normalizedQuery(t, reservation.Query{Page: 20_000_000, PageSize: 200}),
			expectArg: func(t *testing.T, arg sqlc.QueryReservationsParams) {
				assert.Equal(t, int32(200), arg.PageSize)
				assert.Equal(t, int32(math.MaxInt32/200*200), arg.PageOffset)
			},
		},
		{
			name:  "offset beyond storage range is capped",
			query: reservation.Query{Status: reservation.StatusPending, Page: math.MaxInt, PageSize: 200},
			expectArg: func(t *testing.T, arg sqlc.QueryReservationsParams) {
				assert.Equal(t, int32(math.MaxInt32), arg.PageOffset)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

			rows := []sqlc.RsvpReservation{
				builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 1 }).BuildInfra(),
				builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 2 }).BuildInfra(),
			}
			mockQueries.EXPECT().QueryReservations(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.QueryReservationsParams) ([]sqlc.RsvpReservation, error) {
					tc.expectArg(t, arg)
					return rows, nil
				})

			results, err := store.FindByQuery(ctx, tc.query)
			require.NoError(t, err)
			require.Len(t, results, 2)
			assert.Equal(t, int64(1), results[0].ID())
			assert.Equal(t, int64(2), results[1].ID())
		})
	}

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().QueryReservations(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		results, err := store.FindByQuery(ctx, reservation.Query{Page: 1, PageSize: 10})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, results)
	})

	t.Run("success: empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().QueryReservations(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.RsvpReservation{}, nil)

		results, err := store.FindByQuery(ctx, reservation.Query{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func normalizedQuery(t *testing.T, q reservation.Query) reservation.Query {
	t.Helper()
	normalized, err := q.Normalize()
	require.NoError(t, err)
	return normalized
}

// =============================================================================
// FindByFilter Tests
// =============================================================================

func TestReadStore_FindByFilter(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		filter         reservation.Filter
		expectCursor   int64
		expectPageSize int32
	}{
		{
			name:           "ascending first page starts after 0",
			filter:         reservation.Filter{PageSize: 10},
			expectCursor:   0,
			expectPageSize: 11,
		},
		{
			name:           "descending first page starts below max id",
			filter:         reservation.Filter{PageSize: 10, Desc: true},
			expectCursor:   math.MaxInt64,
			expectPageSize: 11,
		},
		{
			name:           "explicit cursor is passed through",
			filter:         reservation.Filter{Cursor: 42, PageSize: 5, Desc: true},
			expectCursor:   42,
			expectPageSize: 6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().FilterReservations(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.FilterReservationsParams) ([]sqlc.RsvpReservation, error) {
					assert.Equal(t, tc.expectCursor, arg.Cursor)
					assert.Equal(t, tc.expectPageSize, arg.PageSize)
					assert.Equal(t, tc.filter.Desc, arg.IsDesc)
					return []sqlc.RsvpReservation{builder.NewReservationBuilder().BuildInfra()}, nil
				})

			results, err := store.FindByFilter(ctx, tc.filter)
			require.NoError(t, err)
			assert.Len(t, results, 1)
		})
	}

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().FilterReservations(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		results, err := store.FindByFilter(ctx, reservation.Filter{PageSize: 10})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, results)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

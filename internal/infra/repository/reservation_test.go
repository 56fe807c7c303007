//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/infra"
	"github.com/zhangwenhan0216/reservation/internal/infra/repository"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
	"github.com/zhangwenhan0216/reservation/tests/common/builder"
	repositorymock "github.com/zhangwenhan0216/reservation/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const conflictDetail = `Key (resource_id, timespan)=(ocean-view-room-713, ["2024-01-22 08:00:00+00","2024-01-23 12:00:00+00")) conflicts with existing key (resource_id, timespan)=(ocean-view-room-713, ["2024-01-21 19:00:00+00","2024-01-22 12:00:00+00")).`

var errDBConnectionLost = errors.New("database connection lost")

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		mockErr     error
		expectKind  infra.RepositoryErrorKind
		expectID    int64
		checkDetail bool
	}{
		{
			name:     "success: returns generated id",
			expectID: 7,
		},
		{
			name: "error: exclusion violation",
			mockErr: &pgconn.PgError{
				Code:       "23P01",
				SchemaName: "rsvp",
				TableName:  "reservations",
				Detail:     conflictDetail,
			},
			expectKind:  infra.KindExclusionViolation,
			checkDetail: true,
		},
		{
			name:       "error: invalid input",
			mockErr:    &pgconn.PgError{Code: "22P02"},
			expectKind: infra.KindInvalidInput,
		},
		{
			name:       "error: database error",
			mockErr:    errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateReservation(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error) {
					assert.Equal(t, res.UserID(), arg.UserID)
					assert.Equal(t, res.ResourceID(), arg.ResourceID)
					assert.Equal(t, sqlc.RsvpReservationStatusPending, arg.Status)
					assert.True(t, arg.Timespan.Valid)
					if tc.mockErr != nil {
						return 0, tc.mockErr
					}
					return tc.expectID, nil
				})

			id, err := repo.Create(ctx, res)

			if tc.mockErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				if tc.checkDetail {
					assert.Equal(t, conflictDetail, infra.DetailOf(err))
				}
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectID, id)
		})
	}
}

func TestReservationRepository_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns confirmed reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

		row := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildInfra()
		mockQueries.EXPECT().ConfirmReservation(ctx, gomock.Any(), row.ID).Return(row, nil)

		res, err := repo.Confirm(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("error: not pending or missing is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ConfirmReservation(ctx, gomock.Any(), int64(9)).Return(sqlc.RsvpReservation{}, pgx.ErrNoRows)

		res, err := repo.Confirm(ctx, 9)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, res)
	})
}

func TestReservationRepository_UpdateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success: passes note through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

		row := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Note = "late checkout" }).BuildInfra()
		mockQueries.EXPECT().
			UpdateReservationNote(ctx, gomock.Any(), sqlc.UpdateReservationNoteParams{ID: row.ID, Note: "late checkout"}).
			Return(row, nil)

		res, err := repo.UpdateNote(ctx, row.ID, reservation.NewNote("late checkout"))
		require.NoError(t, err)
		assert.Equal(t, "late checkout", res.Note().String())
	})

	t.Run("error: missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateReservationNote(ctx, gomock.Any(), gomock.Any()).Return(sqlc.RsvpReservation{}, pgx.ErrNoRows)

		_, err := repo.UpdateNote(ctx, 3, reservation.NewNote(""))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: returns deleted reservation"},
		{name: "error: missing id", mockErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", mockErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

			row := builder.NewReservationBuilder().BuildInfra()
			if tc.mockErr != nil {
				mockQueries.EXPECT().DeleteReservation(ctx, gomock.Any(), row.ID).Return(sqlc.RsvpReservation{}, tc.mockErr)
			} else {
				mockQueries.EXPECT().DeleteReservation(ctx, gomock.Any(), row.ID).Return(row, nil)
			}

			res, err := repo.Delete(ctx, row.ID)

			if tc.mockErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, res.ID())
			assert.True(t, res.TimeSlot().Start().Equal(builder.NewReservationBuilder().Start))
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

package repository

import (
	"context"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/infra"
	"github.com/zhangwenhan0216/reservation/internal/infra/converter"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	ConfirmReservation(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RsvpReservation, error)
	UpdateReservationNote(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationNoteParams) (sqlc.RsvpReservation, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RsvpReservation, error)
}

// ReservationRepository runs every mutation as a single statement; the
// exclusion constraint on rsvp.reservations is the only overlap check.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	params := converter.ReservationToInfra(res)

	id, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

// Confirm moves a pending reservation to confirmed. A missing id and a
// reservation that is not pending both report KindNotFound.
func (r *ReservationRepository) Confirm(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.ConfirmReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to confirm reservation", err)
	}
	return toDomain(row)
}

func (r *ReservationRepository) UpdateNote(ctx context.Context, id int64, note reservation.Note) (*reservation.Reservation, error) {
	params := sqlc.UpdateReservationNoteParams{
		ID:   id,
		Note: note.String(),
	}
	row, err := r.queries.UpdateReservationNote(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reservation note", err)
	}
	return toDomain(row)
}

// Delete removes the reservation and returns its last state.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return toDomain(row)
}

func toDomain(row sqlc.RsvpReservation) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

package readstore

import (
	"context"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/infra"
	"github.com/zhangwenhan0216/reservation/internal/infra/converter"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
	"github.com/zhangwenhan0216/reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation.go -package=readstoremock

type ReservationReadQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RsvpReservation, error)
	QueryReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.QueryReservationsParams) ([]sqlc.RsvpReservation, error)
	FilterReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.FilterReservationsParams) ([]sqlc.RsvpReservation, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

// FindByQuery expects a normalized query.
func (r *ReservationReadStore) FindByQuery(ctx context.Context, q reservation.Query) ([]*reservation.Reservation, error) {
	params := sqlc.QueryReservationsParams{
		UserID:     q.UserID,
		ResourceID: q.ResourceID,
		Status:     converter.StatusToInfra(q.Status),
		During:     pgtype.Range[pgtype.Timestamptz]{Valid: false},
		IsDesc:     q.Desc,
		PageSize:   int32(q.PageSize),
		PageOffset: int32(q.Offset()),
	}
	if window, ok := q.Window(); ok {
		params.During = window.Range()
	}

	rows, err := r.queries.QueryReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	return toDomainList(rows)
}

// FindByFilter expects a normalized filter and fetches one row beyond
// PageSize so the caller can tell whether another page exists.
func (r *ReservationReadStore) FindByFilter(ctx context.Context, f reservation.Filter) ([]*reservation.Reservation, error) {
	params := sqlc.FilterReservationsParams{
		UserID:     f.UserID,
		ResourceID: f.ResourceID,
		Status:     converter.StatusToInfra(f.Status),
		IsDesc:     f.Desc,
		Cursor:     f.Boundary(),
		PageSize:   int32(f.PageSize + 1),
	}

	rows, err := r.queries.FilterReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter reservations", err)
	}
	return toDomainList(rows)
}

func toDomainList(rows []sqlc.RsvpReservation) ([]*reservation.Reservation, error) {
	result, err := converter.ReservationsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation rows", err, infra.KindDBFailure)
	}
	return result, nil
}

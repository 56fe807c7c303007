package queries

import (
	"context"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindByQuery(ctx context.Context, q reservation.Query) ([]*reservation.Reservation, error)
	FindByFilter(ctx context.Context, f reservation.Filter) ([]*reservation.Reservation, error)
}

type ReservationQueries interface {
	Get(ctx context.Context, id int64) (*reservation.Reservation, error)
	Query(ctx context.Context, q reservation.Query) ([]*reservation.Reservation, error)
	Filter(ctx context.Context, f reservation.Filter) ([]*reservation.Reservation, *reservation.Pager, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	if err := reservation.ValidateID(id); err != nil {
		return nil, err
	}

	res, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return res, nil
}

func (q *reservationQueriesImpl) Query(ctx context.Context, query reservation.Query) ([]*reservation.Reservation, error) {
	normalized, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.FindByQuery(ctx, normalized)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return rows, nil
}

func (q *reservationQueriesImpl) Filter(ctx context.Context, filter reservation.Filter) ([]*reservation.Reservation, *reservation.Pager, error) {
	normalized := filter.Normalize()

	rows, err := q.repo.FindByFilter(ctx, normalized)
	if err != nil {
		return nil, nil, shared.TranslateRepoErr(err)
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID()
	}
	ids, pager := reservation.NewPager(normalized, ids)
	return rows[:len(ids)], pager, nil
}

package commands

import (
	"context"
	"log/slog"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	Confirm(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateNote(ctx context.Context, id int64, note reservation.Note) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type ReservationCommands interface {
	Reserve(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	Confirm(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateNote(ctx context.Context, id int64, note string) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	repo   ReservationRepository
	logger *slog.Logger
}

func NewReservationUseCase(repo ReservationRepository, logger *slog.Logger) ReservationCommands {
	return &reservationUseCaseImpl{
		repo:   repo,
		logger: logger,
	}
}

// Reserve validates res and inserts it with an unset status defaulted to
// pending. The input is not modified; the stored reservation is returned.
func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}

	toInsert := reservation.ReconstructReservation(
		0,
		res.UserID(),
		res.ResourceID(),
		res.TimeSlot(),
		res.Note(),
		res.Status().OrDefault(),
	)

	id, err := uc.repo.Create(ctx, toInsert)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	toInsert.AssignID(id)

	uc.logger.InfoContext(ctx, "reservation created",
		slog.Int64("id", id),
		slog.String("resource_id", toInsert.ResourceID()),
		slog.String("timespan", toInsert.TimeSlot().String()),
	)
	return toInsert, nil
}

// Confirm fails with not found both for a missing id and for a reservation
// that is no longer pending.
func (uc *reservationUseCaseImpl) Confirm(ctx context.Context, id int64) (*reservation.Reservation, error) {
	if err := reservation.ValidateID(id); err != nil {
		return nil, err
	}

	res, err := uc.repo.Confirm(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return res, nil
}

func (uc *reservationUseCaseImpl) UpdateNote(ctx context.Context, id int64, note string) (*reservation.Reservation, error) {
	if err := reservation.ValidateID(id); err != nil {
		return nil, err
	}

	res, err := uc.repo.UpdateNote(ctx, id, reservation.NewNote(note))
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return res, nil
}

func (uc *reservationUseCaseImpl) Delete(ctx context.Context, id int64) (*reservation.Reservation, error) {
	if err := reservation.ValidateID(id); err != nil {
		return nil, err
	}

	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	uc.logger.InfoContext(ctx, "reservation deleted", slog.Int64("id", id))
	return res, nil
}

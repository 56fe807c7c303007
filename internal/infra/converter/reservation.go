package converter

import (
	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
	"github.com/zhangwenhan0216/reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		UserID:     res.UserID(),
		ResourceID: res.ResourceID(),
		Timespan:   res.TimeSlot().Range(),
		Note:       res.Note().String(),
		Status:     StatusToInfra(res.Status()),
	}
}

func ReservationFromInfra(row sqlc.RsvpReservation) (*reservation.Reservation, error) {
	start, end, ok := pgconv.RangeFromPgtype(row.Timespan)
	if !ok {
		return nil, errs.Newf("reservation %d has an unbounded timespan", row.ID)
	}
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %d", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.ResourceID,
		slot,
		reservation.NewNote(row.Note),
		StatusFromInfra(row.Status),
	), nil
}

func ReservationsFromInfra(rows []sqlc.RsvpReservation) ([]*reservation.Reservation, error) {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		res, err := ReservationFromInfra(row)
		if err != nil {
			return nil, err
		}
		result[i] = res
	}
	return result, nil
}

func StatusToInfra(s reservation.Status) sqlc.RsvpReservationStatus {
	return sqlc.RsvpReservationStatus(s.String())
}

func StatusFromInfra(s sqlc.RsvpReservationStatus) reservation.Status {
	return reservation.ParseStatus(string(s))
}

//go:build unit || e2e

package builder

import (
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	reqdto "github.com/zhangwenhan0216/reservation/internal/handler/dto/request"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
	"github.com/zhangwenhan0216/reservation/internal/pkg/pgconv"
)

type ReservationBuilder struct {
	ID         int64
	UserID     string
	ResourceID string
	Start      time.Time
	End        time.Time
	Note       string
	Status     reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2024, 1, 21, 19, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         1,
		UserID:     "alice",
		ResourceID: "ocean-view-room-713",
		Start:      start,
		End:        start.Add(17 * time.Hour),
		Note:       "I'll arrive at 3pm. Please help to upgrade to execuitive room if possible.",
		Status:     reservation.StatusPending,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithResourceID(id string) *ReservationBuilder {
	b.ResourceID = id
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

// BuildDomain returns an unpersisted reservation.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.UserID, b.ResourceID, b.Start, b.End, b.Note, b.Status)
}

// BuildPersisted returns a reservation carrying b.ID, skipping validation.
func (b *ReservationBuilder) BuildPersisted() *reservation.Reservation {
	slot, _ := reservation.NewTimeSlot(b.Start, b.End)
	return reservation.ReconstructReservation(b.ID, b.UserID, b.ResourceID, slot, reservation.NewNote(b.Note), b.Status)
}

func (b *ReservationBuilder) BuildInfra() sqlc.RsvpReservation {
	return sqlc.RsvpReservation{
		ID:         b.ID,
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		Timespan:   pgconv.RangeToPgtype(b.Start, b.End),
		Note:       b.Note,
		Status:     sqlc.RsvpReservationStatus(b.Status),
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		Start:      b.Start,
		End:        b.End,
		Note:       b.Note,
		Status:     string(b.Status),
	}
}

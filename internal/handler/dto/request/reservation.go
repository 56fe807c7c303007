package request

import (
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/usecase/queries"
)

// Empty ids and windows are not rejected at binding time so the domain
// validator reports the specific field.
type CreateReservationRequest struct {
	UserID     string    `json:"userId" binding:"max=64"`
	ResourceID string    `json:"resourceId" binding:"max=64"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
	Status     string    `json:"status,omitempty"`
}

func (r CreateReservationRequest) ToDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(
		r.UserID,
		r.ResourceID,
		r.Start,
		r.End,
		r.Note,
		reservation.ParseStatus(r.Status),
	)
}

type UpdateNoteRequest struct {
	Note *string `json:"note" binding:"required"`
}

type QueryReservationsRequest struct {
	UserID     string    `form:"user_id"`
	ResourceID string    `form:"resource_id"`
	Status     string    `form:"status"`
	Start      time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End        time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	Page       int       `form:"page"`
	PageSize   int       `form:"page_size"`
	Desc       bool      `form:"desc"`
}

func (r QueryReservationsRequest) ToDomain() reservation.Query {
	return reservation.Query{
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		Status:     reservation.ParseStatus(r.Status),
		Start:      r.Start,
		End:        r.End,
		Page:       r.Page,
		PageSize:   r.PageSize,
		Desc:       r.Desc,
	}
}

type FilterReservationsRequest struct {
	UserID     string `form:"user_id"`
	ResourceID string `form:"resource_id"`
	Status     string `form:"status"`
	Cursor     string `form:"cursor"`
	PageSize   int    `form:"page_size"`
	Desc       bool   `form:"desc"`
}

func (r FilterReservationsRequest) ToDomain() (reservation.Filter, error) {
	cursor, err := queries.DecodeCursor(r.Cursor)
	if err != nil {
		return reservation.Filter{}, err
	}
	return reservation.Filter{
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		Status:     reservation.ParseStatus(r.Status),
		Cursor:     cursor,
		PageSize:   r.PageSize,
		Desc:       r.Desc,
	}, nil
}

package response

import (
	"time"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/usecase/queries"
)

type ReservationResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	ResourceID string    `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
	Status     string    `json:"status"`
}

type ReservationListResponse struct {
	Items []*ReservationResponse `json:"items"`
}

type PagerResponse struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

type FilterResponse struct {
	Items []*ReservationResponse `json:"items"`
	Pager PagerResponse          `json:"pager"`
}

type WindowResponse struct {
	ResourceID string    `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

type ConflictResponse struct {
	New WindowResponse `json:"new"`
	Old WindowResponse `json:"old"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         res.ID(),
		UserID:     res.UserID(),
		ResourceID: res.ResourceID(),
		Start:      res.TimeSlot().Start(),
		End:        res.TimeSlot().End(),
		Note:       res.Note().String(),
		Status:     res.Status().String(),
	}
}

func FromReservationList(items []*reservation.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(items))
	for i, item := range items {
		result[i] = FromReservation(item)
	}
	return &ReservationListResponse{Items: result}
}

func FromFilterResult(items []*reservation.Reservation, pager *reservation.Pager) *FilterResponse {
	resp := &FilterResponse{Items: FromReservationList(items).Items}
	if pager != nil {
		resp.Pager.Prev = encodeCursor(pager.Prev)
		resp.Pager.Next = encodeCursor(pager.Next)
	}
	return resp
}

// FromConflictInfo returns nil for an unparsed conflict.
func FromConflictInfo(info reservation.ConflictInfo) *ConflictResponse {
	c, ok := info.Conflict()
	if !ok {
		return nil
	}
	return &ConflictResponse{
		New: fromWindow(c.New),
		Old: fromWindow(c.Old),
	}
}

func fromWindow(w reservation.Window) WindowResponse {
	return WindowResponse{
		ResourceID: w.ResourceID,
		Start:      w.Start,
		End:        w.End,
	}
}

func encodeCursor(id *int64) *string {
	if id == nil {
		return nil
	}
	s := queries.EncodeCursor(*id)
	return &s
}

package reservation

import (
	"time"
)

type Reservation struct {
	id         int64
	userID     string
	resourceID string
	timeSlot   TimeSlot
	note       Note
	status     Status
}

// NewReservation builds an unpersisted reservation (id 0). An unset or
// unknown status becomes Pending.
func NewReservation(
	userID, resourceID string,
	start, end time.Time,
	note string,
	status Status,
) (*Reservation, error) {
	if err := ValidateFields(userID, resourceID, start, end); err != nil {
		return nil, err
	}
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		userID:     userID,
		resourceID: resourceID,
		timeSlot:   slot,
		note:       NewNote(note),
		status:     status.OrDefault(),
	}, nil
}

func NewPendingReservation(userID, resourceID string, start, end time.Time, note string) (*Reservation, error) {
	return NewReservation(userID, resourceID, start, end, note, StatusPending)
}

// ReconstructReservation rebuilds a persisted reservation without validation.
func ReconstructReservation(
	id int64,
	userID, resourceID string,
	timeSlot TimeSlot,
	note Note,
	status Status,
) *Reservation {
	return &Reservation{
		id:         id,
		userID:     userID,
		resourceID: resourceID,
		timeSlot:   timeSlot,
		note:       note,
		status:     status,
	}
}

func (r *Reservation) Validate() error {
	return ValidateFields(r.userID, r.resourceID, r.timeSlot.start, r.timeSlot.end)
}

// AssignID records the storage-generated id after a successful insert.
func (r *Reservation) AssignID(id int64) {
	r.id = id
}

func (r *Reservation) IsPersisted() bool {
	return r.id > 0
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

// HoldsResource reports whether the reservation takes part in the exclusivity invariant.
func (r *Reservation) HoldsResource() bool {
	return r.status != StatusBlocked
}

// ConflictsWith mirrors the storage exclusion constraint for in-memory checks.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.resourceID != other.resourceID {
		return false
	}
	if !r.HoldsResource() || !other.HoldsResource() {
		return false
	}
	return r.timeSlot.Overlaps(other.timeSlot)
}

func (r *Reservation) ID() int64          { return r.id }
func (r *Reservation) UserID() string     { return r.userID }
func (r *Reservation) ResourceID() string { return r.resourceID }
func (r *Reservation) TimeSlot() TimeSlot { return r.timeSlot }
func (r *Reservation) Note() Note         { return r.note }
func (r *Reservation) Status() Status     { return r.status }

package errs

import "errors"

// Sentinel errors shared by the domain, usecase and handler layers.
// Callers compare with errors.Is; wrapped errors keep their kind.
var (
	// Validation errors
	ErrInvalidUserID        = errors.New("user_id is invalid")
	ErrInvalidResourceID    = errors.New("resource_id is invalid")
	ErrInvalidTime          = errors.New("time range is invalid")
	ErrInvalidReservationID = errors.New("reservation id is invalid")

	// Reservation errors
	ErrReservationConflict = errors.New("conflict reservation")
	ErrReservationNotFound = errors.New("no reservation found by the given condition")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrUnknown                 = errors.New("unknown error")
)

type Kind string

const (
	KindInvalidUserID        Kind = "INVALID_USER_ID"
	KindInvalidResourceID    Kind = "INVALID_RESOURCE_ID"
	KindInvalidTime          Kind = "INVALID_TIME"
	KindInvalidReservationID Kind = "INVALID_RESERVATION_ID"
	KindConflictReservation  Kind = "CONFLICT_RESERVATION"
	KindNotFound             Kind = "NOT_FOUND"
	KindDB                   Kind = "DB"
	KindUnknown              Kind = "UNKNOWN"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidUserID, KindInvalidUserID},
	{ErrInvalidResourceID, KindInvalidResourceID},
	{ErrInvalidTime, KindInvalidTime},
	{ErrInvalidReservationID, KindInvalidReservationID},
	{ErrReservationConflict, KindConflictReservation},
	{ErrReservationNotFound, KindNotFound},
	{ErrDatabaseOperationFailed, KindDB},
	{ErrUnknown, KindUnknown},
}

// KindOf returns the discriminant of err. Two errors are considered equal
// for contract purposes when their kinds match; payloads are ignored.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindInvalidUserID, KindInvalidResourceID, KindInvalidTime, KindInvalidReservationID:
		return true
	default:
		return false
	}
}

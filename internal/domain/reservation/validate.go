package reservation

import (
	"time"

	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
)

// ValidateFields checks, in order, user id, resource id and the window.
// Ids only have to be non-empty; their content is opaque. The first
// violation is returned.
func ValidateFields(userID, resourceID string, start, end time.Time) error {
	if userID == "" {
		return errs.Wrapf(errs.ErrInvalidUserID, "user_id=%q", userID)
	}
	if resourceID == "" {
		return errs.Wrapf(errs.ErrInvalidResourceID, "resource_id=%q", resourceID)
	}
	return ValidateWindow(start, end)
}

func ValidateID(id int64) error {
	if id <= 0 {
		return errs.Wrapf(errs.ErrInvalidReservationID, "id=%d", id)
	}
	return nil
}

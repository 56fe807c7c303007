package shared

import (
	"log/slog"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	"github.com/zhangwenhan0216/reservation/internal/infra"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
)

// TranslateRepoErr maps a repository failure onto the reservation error
// taxonomy. Only exclusion violations on rsvp.reservations become conflicts.
// Errors that did not come through the repository layer are ErrUnknown.
func TranslateRepoErr(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case !infra.IsRepoErr(err):
		return errs.Mark(err, errs.ErrUnknown)
	case infra.IsKind(err, infra.KindExclusionViolation):
		info := reservation.ParseConflictInfo(infra.DetailOf(err))
		if !info.IsParsed() {
			slog.Warn("unparsed reservation conflict", "detail", infra.DetailOf(err))
		}
		return reservation.NewConflictError(info)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case infra.IsKind(err, infra.KindInvalidInput):
		return errs.Mark(err, errs.ErrInvalidTime)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/zhangwenhan0216/reservation/internal/domain/reservation"
	resdto "github.com/zhangwenhan0216/reservation/internal/handler/dto/response"
	"github.com/zhangwenhan0216/reservation/internal/handler/httperr"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithReservationError maps the error taxonomy onto HTTP statuses.
func abortWithReservationError(c *gin.Context, err error) {
	var conflict *reservation.ConflictError
	if errs.As(err, &conflict) {
		var detail any
		if d := resdto.FromConflictInfo(conflict.Info); d != nil {
			detail = d
		}
		httperr.AbortWithError(c, http.StatusConflict, err, errs.ErrReservationConflict.Error(), detail)
		return
	}

	switch kind := errs.KindOf(err); kind {
	case errs.KindInvalidUserID, errs.KindInvalidResourceID, errs.KindInvalidTime, errs.KindInvalidReservationID:
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), gin.H{"kind": kind})
	case errs.KindNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, errs.ErrReservationNotFound.Error(), nil)
	case errs.KindDB:
		slog.ErrorContext(c.Request.Context(), "reservation storage failure", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, errs.ErrDatabaseOperationFailed.Error(), nil)
	default:
		slog.ErrorContext(c.Request.Context(), "unexpected reservation error",
			"error", err,
			"stack", errs.ExtractStackLines(err, 12),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

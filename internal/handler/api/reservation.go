package api

import (
	"net/http"
	"strconv"

	reqdto "github.com/zhangwenhan0216/reservation/internal/handler/dto/request"
	resdto "github.com/zhangwenhan0216/reservation/internal/handler/dto/response"
	"github.com/zhangwenhan0216/reservation/internal/handler/httperr"
	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
	"github.com/zhangwenhan0216/reservation/internal/usecase/commands"
	"github.com/zhangwenhan0216/reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve
// @Description Create a reservation. Overlapping an existing non-blocked reservation of the same resource fails with 409.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := req.ToDomain()
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	created, err := h.cmds.Reserve(c.Request.Context(), res)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+strconv.FormatInt(created.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary Confirm reservation
// @Description Move a pending reservation to confirmed
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.cmds.Confirm(c.Request.Context(), id)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Update note
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateNoteRequest true "New note"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/note [patch]
func (h *ReservationHandler) UpdateNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.UpdateNote(c.Request.Context(), id, *req.Note)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Delete reservation
// @Description Delete a reservation and return its last state
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Query reservations
// @Description Offset-paginated search. Empty user_id/resource_id match any; status defaults to pending.
// @Tags reservations
// @Produce json
// @Param user_id query string false "User ID"
// @Param resource_id query string false "Resource ID"
// @Param status query string false "pending, confirmed or blocked"
// @Param start query string false "Window start (RFC3339)"
// @Param end query string false "Window end (RFC3339)"
// @Param page query int false "Page, 1-based"
// @Param page_size query int false "Page size (default 20, max 200)"
// @Param desc query bool false "Order by id descending"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) Query(c *gin.Context) {
	var req reqdto.QueryReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.Query(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Filter reservations
// @Description Keyset-paginated search by id
// @Tags reservations
// @Produce json
// @Param user_id query string false "User ID"
// @Param resource_id query string false "Resource ID"
// @Param status query string false "pending, confirmed or blocked"
// @Param cursor query string false "Cursor from a previous pager"
// @Param page_size query int false "Page size (default 20, max 200)"
// @Param desc query bool false "Order by id descending"
// @Success 200 {object} resdto.FilterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/filter [get]
func (h *ReservationHandler) Filter(c *gin.Context) {
	var req reqdto.FilterReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", gin.H{"kind": errs.KindOf(err)})
		return
	}
	items, pager, err := h.q.Filter(c.Request.Context(), filter)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFilterResult(items, pager))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidReservationID), "Invalid id", nil)
		return 0, false
	}
	return id, true
}

package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/pkg/response"
	"condoapp/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	views *Registry
}

func NewHandler(views *Registry) *Handler {
	return &Handler{views: views}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/reservations/:id")
	g.GET("/schedule", h.Mount)
	g.DELETE("/schedule", h.Unmount)
	g.POST("/schedule/reload", h.Reload)
	g.POST("/calendar/toggle", h.ToggleCalendar)
	g.POST("/calendar/month", h.ShowMonth)
	g.POST("/days/:date", h.SelectDay)
	g.POST("/detail/add", h.BeginAdd)
	g.POST("/detail/cancel", h.CancelAdd)
	g.DELETE("/detail", h.CloseDetail)
	g.POST("/bookings", h.Submit)
}

func resourceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid resource ID")
		return 0, false
	}
	return id, true
}

// mounted resolves the view of the request; it writes the error itself.
func (h *Handler) mounted(c *gin.Context) (*View, bool) {
	id, ok := resourceID(c)
	if !ok {
		return nil, false
	}
	v, err := h.views.Get(id)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return v, true
}

func (h *Handler) Mount(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	v, err := h.views.Mount(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v.State())
}

func (h *Handler) Unmount(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	h.views.Unmount(id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Reload(c *gin.Context) {
	v, ok := h.mounted(c)
	if !ok {
		return
	}
	if err := v.Reload(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v.State())
}

func (h *Handler) ToggleCalendar(c *gin.Context) {
	h.apply(c, func(v *View) error {
		_, err := v.ToggleCalendar()
		return err
	})
}

func (h *Handler) ShowMonth(c *gin.Context) {
	var req MonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month offset", errs)
		return
	}
	h.apply(c, func(v *View) error { return v.ShowMonth(req.Delta) })
}

func (h *Handler) SelectDay(c *gin.Context) {
	h.apply(c, func(v *View) error {
		_, err := v.SelectDay(c.Param("date"))
		return err
	})
}

func (h *Handler) BeginAdd(c *gin.Context) {
	h.apply(c, func(v *View) error { return v.BeginAddBooking() })
}

func (h *Handler) CancelAdd(c *gin.Context) {
	h.apply(c, func(v *View) error { return v.CancelAddBooking() })
}

func (h *Handler) CloseDetail(c *gin.Context) {
	h.apply(c, func(v *View) error { return v.CloseDetail() })
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	v, ok := h.mounted(c)
	if !ok {
		return
	}
	if err := v.ValidateAndSubmit(c.Request.Context(), req.Start, req.End); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v.State())
}

func (h *Handler) apply(c *gin.Context, op func(v *View) error) {
	v, ok := h.mounted(c)
	if !ok {
		return
	}
	if err := op(v); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v.State())
}

func writeError(c *gin.Context, err error) {
	var inputErr *InputError
	switch {
	case errors.As(err, &inputErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_TIME", "Use o formato HH:MM", gin.H{"field": inputErr.Field})
	case errors.Is(err, ErrInvalidDay):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ErrDayUnavailable):
		response.Error(c, http.StatusUnprocessableEntity, "DAY_UNAVAILABLE", "Dias anteriores a hoje não podem ser selecionados")
	case errors.Is(err, ErrCalendarHidden), errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATE", err.Error())
	case errors.Is(err, ErrNotMounted), errors.Is(err, ErrDisposed):
		response.Error(c, http.StatusNotFound, "NOT_MOUNTED", err.Error())
	case errors.Is(err, ErrSubmitFailed):
		response.Error(c, http.StatusBadGateway, "BOOKING_FAILED", apiclient.MessageOf(err, "Não foi possível criar o agendamento"))
	case errors.Is(err, domain.ErrNotFound), apiclient.StatusOf(err) == http.StatusNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiclient.MessageOf(err, "Não foi possível conectar ao servidor"))
	}
}

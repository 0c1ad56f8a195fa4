package occurrences

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"condoapp/internal/domain"
	"condoapp/internal/middleware"
	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/pkg/response"
	"condoapp/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/occurrences", h.List)
	rg.POST("/occurrences", h.Create)
	rg.POST("/occurrences/:id/resolve", middleware.SyndicOnly(), h.Resolve)
	rg.DELETE("/occurrences/:id", middleware.SyndicOnly(), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), middleware.Session(c))
	resp := ListResponse{Items: items}
	if err != nil {
		resp.Error = apiclient.MessageOf(err, "Não foi possível conectar ao servidor")
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), middleware.Session(c), req); err != nil {
		writeError(c, err)
		return
	}
	h.List(c)
}

func (h *Handler) Resolve(c *gin.Context) {
	h.mutate(c, h.service.Resolve)
}

func (h *Handler) Delete(c *gin.Context) {
	h.mutate(c, h.service.Delete)
}

func (h *Handler) mutate(c *gin.Context, op func(context.Context, session.Context, int64) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), middleware.Session(c), id); err != nil {
		writeError(c, err)
		return
	}
	h.List(c)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTitleAndDescriptionRequired):
		response.BadRequest(c, "Preencha título e descrição.")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Apenas síndicos podem alterar ocorrências")
	default:
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiclient.MessageOf(err, "Não foi possível conectar ao servidor"))
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid occurrence ID")
		return 0, false
	}
	return id, true
}

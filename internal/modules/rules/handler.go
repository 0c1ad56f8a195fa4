package rules

import (
	"errors"
	"net/http"

	"condoapp/internal/domain"
	"condoapp/internal/middleware"
	"condoapp/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rules", h.List)
	rg.POST("/rules", middleware.SyndicOnly(), h.Create)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	resp := ListResponse{Items: items, CanCreate: middleware.Session(c).IsSyndic()}
	if err != nil {
		resp.Error = "Não foi possível carregar as regras"
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.service.Create(c.Request.Context(), middleware.Session(c), req)
	switch {
	case err == nil:
		h.List(c)
	case errors.Is(err, ErrDescriptionRequired):
		response.BadRequest(c, "Descreva a nova regra.")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Apenas síndicos podem criar regras")
	default:
		response.Error(c, http.StatusBadGateway, "CREATE_FAILED", "Não foi possível criar a regra")
	}
}

package condominium

import (
	"errors"
	"net/http"

	"condoapp/internal/middleware"
	"condoapp/internal/pkg/apiclient"
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
	rg.POST("/condominium/link", h.Link)
}

func (h *Handler) Link(c *gin.Context) {
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Link(c.Request.Context(), middleware.Session(c), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenRequired):
			response.BadRequest(c, "Informe o token do condomínio")
		case errors.Is(err, ErrLinkFailed):
			response.Error(c, http.StatusUnprocessableEntity, "LINK_FAILED", "Token inválido ou erro ao conectar ao servidor.")
		case errors.Is(err, ErrCreateFailed):
			response.Error(c, http.StatusBadGateway, "CREATE_FAILED", apiclient.MessageOf(err, "Não foi possível conectar ao servidor"))
		default:
			_ = c.Error(err)
			response.Internal(c, "Failed to store condominium")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

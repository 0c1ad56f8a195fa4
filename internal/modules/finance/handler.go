package finance

import (
	"errors"
	"net/http"

	"condoapp/internal/domain"
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
	rg.GET("/finance", h.Overview)
	rg.POST("/finance/charges", middleware.SyndicOnly(), h.CreateCharge)
}

func (h *Handler) Overview(c *gin.Context) {
	ov, err := h.service.Overview(c.Request.Context())
	ov.CanCreate = middleware.Session(c).IsSyndic()
	if err != nil {
		ov.Error = "Erro ao carregar financeiro"
	}
	response.Success(c, http.StatusOK, ov)
}

func (h *Handler) CreateCharge(c *gin.Context) {
	var req CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.service.CreateCharge(c.Request.Context(), middleware.Session(c), req)
	var verr *ValidationError
	switch {
	case err == nil:
		h.Overview(c)
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Informe valor e vencimento", verr.Fields)
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Apenas síndicos podem criar cobranças")
	default:
		response.Error(c, http.StatusBadGateway, "CREATE_FAILED", apiclient.MessageOf(err, "Não foi possível criar a cobrança"))
	}
}

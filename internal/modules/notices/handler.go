package notices

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/notices", h.List)
	rg.POST("/notices", middleware.SyndicOnly(), h.Create)
	rg.DELETE("/notices/:id", middleware.SyndicOnly(), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", FilterAll)
	if filter != FilterToday {
		filter = FilterAll
	}

	sess := middleware.Session(c)
	items, err := h.service.List(c.Request.Context(), sess, filter)
	resp := ListResponse{Items: items, Filter: filter, CanCreate: sess.IsSyndic()}
	if err != nil {
		resp.Error = "Não foi possível carregar os avisos"
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), middleware.Session(c), req); err != nil {
		writeError(c, err)
		return
	}
	h.List(c)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notice ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Session(c), id); err != nil {
		writeError(c, err)
		return
	}
	h.List(c)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTitleAndMessageRequired):
		response.BadRequest(c, "Preencha título e mensagem.")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Apenas síndicos podem gerenciar avisos")
	case errors.Is(err, ErrCreateFailed):
		response.Error(c, http.StatusBadGateway, "CREATE_FAILED", "Não foi possível criar o aviso")
	case errors.Is(err, ErrDeleteFailed):
		response.Error(c, http.StatusBadGateway, "DELETE_FAILED", "Não foi possível deletar o aviso")
	default:
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Não foi possível conectar ao servidor")
	}
}

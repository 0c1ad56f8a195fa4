package home

import (
	"errors"
	"net/http"

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
	rg.GET("/home", h.State)
	rg.POST("/home/select", h.Select)
	rg.POST("/home/bell", h.Bell)
	rg.POST("/home/fab", h.PressFAB)
}

func (h *Handler) State(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.State(middleware.Session(c)))
}

func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "label is required")
		return
	}
	if err := h.service.Select(req.Label); err != nil {
		response.Error(c, http.StatusNotFound, "UNKNOWN_SCREEN", err.Error())
		return
	}
	h.State(c)
}

func (h *Handler) Bell(c *gin.Context) {
	h.service.Bell()
	h.State(c)
}

func (h *Handler) PressFAB(c *gin.Context) {
	cmd, err := h.service.PressFAB(middleware.Session(c))
	if errors.Is(err, ErrNoCreate) {
		response.Error(c, http.StatusConflict, "NO_CREATE_ACTION", "Nada para criar nesta tela")
		return
	}
	response.Success(c, http.StatusOK, cmd)
}

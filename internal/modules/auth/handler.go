package auth

import (
	"errors"
	"net/http"

	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the login, register and logout screens
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.GET("/session", h.Session)
		authGroup.POST("/logout", h.Logout)
	}
}

// Login authenticates and tells the shell which screen comes next.
// @Summary		Login
// @Param		request	body	LoginRequest	true	"email and password"
// @Success		200	{object}	LoginResult
// @Failure		400	{object}	map[string]interface{} "missing fields"
// @Failure		401	{object}	map[string]interface{} "rejected by the backend"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Erro ao fazer login")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Não foi possível conectar ao servidor")
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Session(c *gin.Context) {
	view, ok := h.service.Current()
	if !ok {
		response.Error(c, http.StatusUnauthorized, "NOT_LOGGED_IN", "Usuário não logado. Faça login novamente.")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		_ = c.Error(err)
		response.Internal(c, "Failed to clear session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": NextLogin})
}

func writeError(c *gin.Context, err error, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Preencha todos os campos", verr.Fields)
	case errors.Is(err, ErrLoginFailed):
		status := apiclient.StatusOf(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		response.Error(c, status, "LOGIN_FAILED", apiclient.MessageOf(err, fallback))
	case errors.Is(err, ErrRegisterFailed):
		status := apiclient.StatusOf(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		response.Error(c, status, "REGISTRATION_FAILED", apiclient.MessageOf(err, fallback))
	default:
		_ = c.Error(err)
		response.Internal(c, fallback)
	}
}

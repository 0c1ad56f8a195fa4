package reservations

import (
	"errors"
	"io"
	"net/http"

	"condoapp/internal/domain"
	"condoapp/internal/middleware"
	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.List)
	rg.POST("/reservations", middleware.SyndicOnly(), h.Create)
}

// List answers 200 with an error text on failure so the shell can show the
// alert over an empty list.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	resp := ListResponse{Items: items}
	if err != nil {
		resp.Error = apiclient.MessageOf(err, "Não foi possível conectar ao servidor")
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	in := CreateResourceInput{
		Name:        c.PostForm("nome"),
		Description: c.PostForm("descricao"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		if fh.Size > maxImageSize {
			response.BadRequest(c, "Image is too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.BadRequest(c, "Invalid image")
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			response.BadRequest(c, "Invalid image")
			return
		}
		in.Image, in.ImageName = data, fh.Filename
	}

	card, err := h.service.Create(c.Request.Context(), middleware.Session(c), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrImageRequired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Apenas síndicos podem criar reservas")
		default:
			response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", apiclient.MessageOf(err, "Não foi possível criar a reserva"))
		}
		return
	}

	response.Success(c, http.StatusCreated, card)
}

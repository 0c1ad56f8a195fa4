package devbackend

import (
	"condoapp/internal/middleware"
	"condoapp/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the development backend under /api.
func NewRouter(db *gorm.DB, jwtService *jwt.Service) *gin.Engine {
	repo := NewRepository(db)
	h := NewHandler(NewService(repo, jwtService), repo, jwtService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger())
	h.RegisterRoutes(r.Group("/api"))
	return r
}

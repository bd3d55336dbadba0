package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/federalbonds/backend/internal/container"
	handlers "github.com/federalbonds/backend/internal/interface/http"
	"github.com/federalbonds/backend/internal/interface/middleware"
	"github.com/federalbonds/backend/pkg/helpers"
)

// ProfileModule wires the authenticated profile dashboard.
// Protected: GET /api/profile, PUT /api/profile, DELETE /api/profile
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/profile", m.Handler.View)
		auth.PUT("/profile", m.Handler.Update)
		auth.DELETE("/profile", m.Handler.Delete)
	}
}

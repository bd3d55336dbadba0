package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/federalbonds/backend/internal/container"
	handlers "github.com/federalbonds/backend/internal/interface/http"
	"github.com/federalbonds/backend/internal/interface/middleware"
	"github.com/federalbonds/backend/pkg/helpers"
	"github.com/federalbonds/backend/pkg/response"
)

// AccountModule wires registration, login, refresh and logout.
// Public: POST /api/account/register, POST /api/account/login, POST /api/account/refresh
// Protected: POST /api/account/logout
type AccountModule struct {
	Handler *handlers.AccountHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AccountHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.POST("/account/register", registerLimiter, m.Handler.Register)
	rg.POST("/account/login", loginLimiter, m.Handler.Login)
	rg.POST("/account/refresh", refreshLimiter, m.Handler.Refresh)

	rg.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
	})

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/account/logout", m.Handler.Logout)
	}
}

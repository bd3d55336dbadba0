package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/federalbonds/backend/internal/container"
	handlers "github.com/federalbonds/backend/internal/interface/http"
	"github.com/federalbonds/backend/internal/interface/middleware"
	"github.com/federalbonds/backend/pkg/helpers"
)

// InvestmentModule wires the authenticated buy/sell/list routes.
// Protected: GET /api/investments, POST /api/investments, POST /api/investments/:id/sell
type InvestmentModule struct {
	Handler *handlers.InvestmentHandler
	JWT     *helpers.JWTManager
}

func NewInvestmentModule(h *handlers.InvestmentHandler, jwt *helpers.JWTManager) *InvestmentModule {
	return &InvestmentModule{Handler: h, JWT: jwt}
}

func (m *InvestmentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/investments", m.Handler.List)
		auth.POST("/investments", m.Handler.Create)
		auth.POST("/investments/:id/sell", m.Handler.Sell)
	}
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/federalbonds/backend/internal/interface/http"
)

// HomeModule wires the anonymous landing pages.
// Public: GET /api/home, GET /api/home/faq, GET /api/home/contact
type HomeModule struct {
	Handler *handlers.HomeHandler
}

func NewHomeModule(h *handlers.HomeHandler) *HomeModule {
	return &HomeModule{Handler: h}
}

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/home", m.Handler.Index)
	rg.GET("/home/faq", m.Handler.FAQ)
	rg.GET("/home/contact", m.Handler.Contact)
}

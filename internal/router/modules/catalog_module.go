package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/federalbonds/backend/internal/interface/http"
)

// CatalogModule wires the anonymous product catalog.
// Public: GET /api/products, GET /api/products/:id
type CatalogModule struct {
	Handler *handlers.ProductHandler
}

func NewCatalogModule(h *handlers.ProductHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/:id", m.Handler.Details)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/pkg/response"
)

// HomeHandler serves the landing, FAQ and contact pages.
type HomeHandler struct {
	Catalog *application.CatalogService
	Logger  *logrus.Logger
}

func NewHomeHandler(catalog *application.CatalogService, logger *logrus.Logger) *HomeHandler {
	return &HomeHandler{Catalog: catalog, Logger: logger}
}

// Index returns the landing page payload: the full bond catalog.
func (h *HomeHandler) Index(c *gin.Context) {
	products, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("listing products failed")
		response.Error(c, http.StatusInternalServerError, "could not load products", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": toProductResponses(products)}, "welcome", nil)
}

func (h *HomeHandler) FAQ(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"items": []gin.H{
			{
				"question": "What is the minimum investment amount?",
				"answer":   "Each investment requires at least EUR 100.",
			},
			{
				"question": "Can I sell an investment before it matures?",
				"answer":   "Yes. Selling marks the investment as sold on the current date; a sale is final.",
			},
			{
				"question": "What is a green bond?",
				"answer":   "A bond whose proceeds fund sustainability-focused projects.",
			},
		},
	}, "faq", nil)
}

func (h *HomeHandler) Contact(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"email": "support@federalbonds.example",
		"phone": "+49 800 0000000",
	}, "contact", nil)
}

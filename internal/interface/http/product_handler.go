package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/pkg/response"
)

// ProductHandler serves the read-only bond catalog.
type ProductHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("listing products failed")
		response.Error(c, http.StatusInternalServerError, "could not load products", nil)
		return
	}
	response.Success(c, http.StatusOK, toProductResponses(products), "products", nil)
}

func (h *ProductHandler) Details(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "product not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("product_id", id).Error("loading product failed")
		response.Error(c, http.StatusInternalServerError, "could not load product", nil)
		return
	}
	response.Success(c, http.StatusOK, toProductResponse(p), "product", nil)
}

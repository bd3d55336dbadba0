package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/internal/interface/middleware"
	"github.com/federalbonds/backend/pkg/response"
	"github.com/federalbonds/backend/pkg/validation"
)

// InvestmentHandler serves the authenticated buy/sell/list operations.
type InvestmentHandler struct {
	Svc    *application.InvestmentService
	Logger *logrus.Logger
}

func NewInvestmentHandler(svc *application.InvestmentService, logger *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{Svc: svc, Logger: logger}
}

type createInvestmentRequest struct {
	ProductID int64   `json:"product_id" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"required,gte=100"`
}

// List returns all of the caller's investments, sold and open.
func (h *InvestmentHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	investments, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("listing investments failed")
		response.Error(c, http.StatusInternalServerError, "could not load investments", nil)
		return
	}
	response.Success(c, http.StatusOK, toInvestmentResponses(investments), "investments", nil)
}

// Create buys an amount of a product for the caller.
func (h *InvestmentHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	inv, err := h.Svc.Create(c.Request.Context(), uid, req.ProductID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAmountTooLow):
			response.Error(c, http.StatusBadRequest, err.Error(), gin.H{"amount": "must be at least 100"})
		case errors.Is(err, application.ErrNotFound):
			response.Error(c, http.StatusNotFound, "product not found", nil)
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("creating investment failed")
			response.Error(c, http.StatusInternalServerError, "could not create investment", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, toInvestmentResponse(inv), "investment created", nil)
}

// Sell marks the caller's investment as sold; repeated sells are no-ops.
func (h *InvestmentHandler) Sell(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid investment id", nil)
		return
	}

	inv, err := h.Svc.Sell(c.Request.Context(), uid, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error(c, http.StatusNotFound, "investment not found", nil)
		case errors.Is(err, application.ErrNotOwner):
			response.Error(c, http.StatusForbidden, "forbidden", nil)
		default:
			h.Logger.WithError(err).WithField("investment_id", id).Error("selling investment failed")
			response.Error(c, http.StatusInternalServerError, "could not sell investment", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, toInvestmentResponse(inv), "investment sold", nil)
}

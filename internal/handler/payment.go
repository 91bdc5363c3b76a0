package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickride/internal/domain"
	"quickride/internal/service"
)

// PaymentHandler handles HTTP requests for payment methods and transactions.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// AddMethodRequest is the HTTP request body for adding a payment method.
type AddMethodRequest struct {
	Type     string `json:"type"` // card, wallet
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

// GetMethods handles GET /v1/payments/methods
func (h *PaymentHandler) GetMethods(c *gin.Context) {
	methods, err := h.paymentService.ListMethods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, methods)
}

// AddMethod handles POST /v1/payments/methods
func (h *PaymentHandler) AddMethod(c *gin.Context) {
	var req AddMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	method, err := h.paymentService.AddMethod(c.Request.Context(), &domain.PaymentMethod{
		Type:     domain.PaymentMethodType(req.Type),
		Brand:    req.Brand,
		Last4:    req.Last4,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, method)
}

// RemoveMethod handles DELETE /v1/payments/methods/:id
func (h *PaymentHandler) RemoveMethod(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment method id"})
		return
	}

	if err := h.paymentService.RemoveMethod(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"success": true})
}

// SetDefaultMethod handles POST /v1/payments/methods/:id/default
func (h *PaymentHandler) SetDefaultMethod(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment method id"})
		return
	}

	method, err := h.paymentService.SetDefaultMethod(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, method)
}

// GetTransactions handles GET /v1/payments/transactions
func (h *PaymentHandler) GetTransactions(c *gin.Context) {
	txs, err := h.paymentService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, txs)
}

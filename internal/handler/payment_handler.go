package handler

import (
	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	results        *ResultWriter
}

func NewPaymentHandler(paymentService service.PaymentService, results *ResultWriter) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		results:        results,
	}
}

// CreatePayment starts a purchase for the user in the path
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.paymentService.CreatePayment(c.Request.Context(), userID, &req))
}

func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	userID, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	h.results.Query(c, h.paymentService.GetPaymentsByUser(c.Request.Context(), userID))
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.results.pathID(c, "paymentId")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.paymentService.UpdatePayment(c.Request.Context(), id, &req))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := h.results.pathID(c, "paymentId")
	if !ok {
		return
	}
	h.results.Command(c, h.paymentService.DeletePayment(c.Request.Context(), id))
}

// PayPayments settles every listed payment in one transaction
func (h *PaymentHandler) PayPayments(c *gin.Context) {
	var req dto.PayPaymentsRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.paymentService.PayPayments(c.Request.Context(), req.PaymentIDs))
}

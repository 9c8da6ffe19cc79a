package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/shared/utils"
)

type PaymentHandler struct {
	listPaymentsUC   ListPaymentsExecutor
	approvePaymentUC ApprovePaymentExecutor
	rejectPaymentUC  RejectPaymentExecutor
}

func NewPaymentHandler(
	listPaymentsUC ListPaymentsExecutor,
	approvePaymentUC ApprovePaymentExecutor,
	rejectPaymentUC RejectPaymentExecutor,
) *PaymentHandler {
	return &PaymentHandler{
		listPaymentsUC:   listPaymentsUC,
		approvePaymentUC: approvePaymentUC,
		rejectPaymentUC:  rejectPaymentUC,
	}
}

// ListPayments handles GET /api/admin/payments
// @Summary List payments
// @Description Lists payment submissions with optional status filter
// @Tags Payments
// @Produce json
// @Param limit query int false "Page size"
// @Param skip query int false "Offset"
// @Param status query string false "Status filter" Enums(all, pending, verified, rejected)
// @Success 200 {object} dto.PaymentListResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /admin/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	filter := payment.ListFilter{
		Limit:  pagination.Limit,
		Skip:   pagination.Skip,
		Status: c.Query("status"),
	}

	result, err := h.listPaymentsUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// ApprovePayment handles PUT /api/admin/payments/:payment_id/approve
// @Summary Approve payment
// @Description Verifies a pending payment and activates the purchased subscription
// @Tags Payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} utils.ErrorDetail
// @Failure 404 {object} utils.ErrorDetail
// @Router /admin/payments/{payment_id}/approve [put]
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	result, err := h.approvePaymentUC.Execute(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// RejectPayment handles PUT /api/admin/payments/:payment_id/reject
// @Summary Reject payment
// @Description Rejects a pending payment with a reason
// @Tags Payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param reason query string false "Rejection reason"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} utils.ErrorDetail
// @Failure 404 {object} utils.ErrorDetail
// @Router /admin/payments/{payment_id}/reject [put]
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	result, err := h.rejectPaymentUC.Execute(c.Request.Context(), c.Param("payment_id"), c.Query("reason"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

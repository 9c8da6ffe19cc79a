package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminDto "streamdesk/internal/application/admin/dto"
	paymentDto "streamdesk/internal/application/payment/dto"
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/interfaces/http/handlers/testutil"
	"streamdesk/internal/shared/errors"
)

type mockListPaymentsUC struct {
	gotFilter payment.ListFilter
	result    *paymentDto.PaymentListResponse
	err       error
}

func (m *mockListPaymentsUC) Execute(ctx context.Context, filter payment.ListFilter) (*paymentDto.PaymentListResponse, error) {
	m.gotFilter = filter
	return m.result, m.err
}

type mockApprovePaymentUC struct {
	gotPaymentID string
	result       *paymentDto.ActionResponse
	err          error
}

func (m *mockApprovePaymentUC) Execute(ctx context.Context, paymentID string) (*paymentDto.ActionResponse, error) {
	m.gotPaymentID = paymentID
	return m.result, m.err
}

type mockRejectPaymentUC struct {
	gotPaymentID string
	gotReason    string
	result       *paymentDto.ActionResponse
	err          error
}

func (m *mockRejectPaymentUC) Execute(ctx context.Context, paymentID, reason string) (*paymentDto.ActionResponse, error) {
	m.gotPaymentID = paymentID
	m.gotReason = reason
	return m.result, m.err
}

type mockGetStatisticsUC struct {
	result *adminDto.StatisticsResponse
	err    error
}

func (m *mockGetStatisticsUC) Execute(ctx context.Context) (*adminDto.StatisticsResponse, error) {
	return m.result, m.err
}

func TestPaymentHandler_ListPayments_ForwardsFilter(t *testing.T) {
	mockUC := &mockListPaymentsUC{result: &paymentDto.PaymentListResponse{
		Payments: []paymentDto.PaymentResponse{},
		Limit:    10,
	}}
	handler := NewPaymentHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/payments", nil)
	testutil.SetQueryParams(c, map[string]string{"limit": "10", "status": "pending"})

	handler.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payment.ListFilter{Limit: 10, Skip: 0, Status: "pending"}, mockUC.gotFilter)

	var resp paymentDto.PaymentListResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.NotNil(t, resp.Payments)
}

func TestPaymentHandler_ListPayments_InvalidStatus(t *testing.T) {
	mockUC := &mockListPaymentsUC{err: errors.NewValidationError("Invalid status filter")}
	handler := NewPaymentHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/payments", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "refunded"})

	handler.ListPayments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.ErrorDetail
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Invalid status filter", resp.Detail)
}

func TestPaymentHandler_ApprovePayment_Success(t *testing.T) {
	mockUC := &mockApprovePaymentUC{result: &paymentDto.ActionResponse{
		Message:   "Payment approved",
		PaymentID: "pay_abc123",
	}}
	handler := NewPaymentHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/payments/pay_abc123/approve", nil)
	testutil.SetURLParam(c, "payment_id", "pay_abc123")

	handler.ApprovePayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pay_abc123", mockUC.gotPaymentID)

	var resp paymentDto.ActionResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Payment approved", resp.Message)
	assert.Equal(t, "pay_abc123", resp.PaymentID)
}

func TestPaymentHandler_ApprovePayment_NotFound(t *testing.T) {
	mockUC := &mockApprovePaymentUC{err: errors.NewNotFoundError("Payment not found")}
	handler := NewPaymentHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/payments/pay_missing/approve", nil)
	testutil.SetURLParam(c, "payment_id", "pay_missing")

	handler.ApprovePayment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.ErrorDetail
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Payment not found", resp.Detail)
}

func TestPaymentHandler_ApprovePayment_NotPending(t *testing.T) {
	mockUC := &mockApprovePaymentUC{err: errors.NewValidationError("Payment is not pending")}
	handler := NewPaymentHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/payments/pay_done/approve", nil)
	testutil.SetURLParam(c, "payment_id", "pay_done")

	handler.ApprovePayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.ErrorDetail
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Payment is not pending", resp.Detail)
}

func TestPaymentHandler_RejectPayment_ForwardsReason(t *testing.T) {
	mockUC := &mockRejectPaymentUC{result: &paymentDto.ActionResponse{
		Message:   "Payment rejected",
		PaymentID: "pay_abc123",
	}}
	handler := NewPaymentHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/payments/pay_abc123/reject", nil)
	testutil.SetURLParam(c, "payment_id", "pay_abc123")
	testutil.SetQueryParams(c, map[string]string{"reason": "Blurry screenshot"})

	handler.RejectPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pay_abc123", mockUC.gotPaymentID)
	assert.Equal(t, "Blurry screenshot", mockUC.gotReason)
}

func TestPaymentHandler_RejectPayment_NoReason(t *testing.T) {
	mockUC := &mockRejectPaymentUC{result: &paymentDto.ActionResponse{
		Message:   "Payment rejected",
		PaymentID: "pay_abc123",
	}}
	handler := NewPaymentHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/payments/pay_abc123/reject", nil)
	testutil.SetURLParam(c, "payment_id", "pay_abc123")

	handler.RejectPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", mockUC.gotReason)
}

func TestStatisticsHandler_GetStatistics_Success(t *testing.T) {
	mockUC := &mockGetStatisticsUC{result: &adminDto.StatisticsResponse{
		TotalUsers:      42,
		PendingPayments: 3,
		RevenueByPlan:   []adminDto.PlanRevenue{},
		TopPlatforms:    []adminDto.PlatformUsage{},
	}}
	handler := NewStatisticsHandler(mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/statistics", nil)

	handler.GetStatistics(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp adminDto.StatisticsResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, int64(42), resp.TotalUsers)
	assert.Equal(t, int64(3), resp.PendingPayments)
}

func TestStatisticsHandler_GetStatistics_Error(t *testing.T) {
	mockUC := &mockGetStatisticsUC{err: errors.NewInternalError("failed to count users")}
	handler := NewStatisticsHandler(mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/statistics", nil)

	handler.GetStatistics(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

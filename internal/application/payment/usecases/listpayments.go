package usecases

import (
	"context"

	"streamdesk/internal/application/payment/dto"
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// ListPaymentsUseCase handles the review queue listing.
type ListPaymentsUseCase struct {
	paymentRepo payment.PaymentRepository
	logger      logger.Interface
}

func NewListPaymentsUseCase(paymentRepo payment.PaymentRepository, log logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo, logger: log}
}

func (uc *ListPaymentsUseCase) Execute(ctx context.Context, filter payment.ListFilter) (*dto.PaymentListResponse, error) {
	if filter.Status != "" && !payment.ValidStatus(filter.Status) {
		return nil, errors.NewValidationError("invalid status filter")
	}

	payments, total, err := uc.paymentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err)
		return nil, errors.NewInternalError("failed to list payments")
	}

	resp := dto.NewPaymentListResponse(payments, total, filter.Limit, filter.Skip)
	return &resp, nil
}

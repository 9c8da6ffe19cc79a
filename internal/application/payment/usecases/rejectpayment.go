package usecases

import (
	"context"

	"streamdesk/internal/application/payment/dto"
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// RejectPaymentUseCase rejects a pending payment with an operator-provided
// reason.
type RejectPaymentUseCase struct {
	paymentRepo payment.PaymentRepository
	logger      logger.Interface
}

func NewRejectPaymentUseCase(paymentRepo payment.PaymentRepository, log logger.Interface) *RejectPaymentUseCase {
	return &RejectPaymentUseCase{paymentRepo: paymentRepo, logger: log}
}

func (uc *RejectPaymentUseCase) Execute(ctx context.Context, paymentID, reason string) (*dto.ActionResponse, error) {
	p, err := uc.paymentRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, errors.NewNotFoundError("Payment not found")
	}

	if p.Status() != payment.StatusPending {
		return nil, errors.NewBadRequestError("Payment is not pending")
	}

	if err := p.Reject(reason); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := uc.paymentRepo.UpdateFromPending(ctx, p); err != nil {
		if err == payment.ErrNotPending {
			return nil, errors.NewBadRequestError("Payment is not pending")
		}
		uc.logger.Errorw("failed to reject payment", "payment_id", paymentID, "error", err)
		return nil, errors.NewInternalError("failed to reject payment")
	}

	uc.logger.Infow("payment rejected",
		"payment_id", paymentID,
		"telegram_id", p.TelegramID(),
		"reason", *p.RejectionReason())

	return &dto.ActionResponse{
		Message:   "Payment rejected",
		PaymentID: paymentID,
	}, nil
}

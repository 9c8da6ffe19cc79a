package mappers

import (
	"fmt"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:               p.ID(),
		PaymentID:        p.PaymentID(),
		TelegramID:       p.TelegramID(),
		Amount:           p.Amount(),
		PlanType:         p.PlanType(),
		Platforms:        models.StringList(p.Platforms()),
		UPIID:            p.UPIID(),
		TransactionID:    p.TransactionID(),
		ScreenshotURL:    p.ScreenshotURL(),
		Status:           string(p.Status()),
		VerificationDate: p.VerificationDate(),
		RejectionReason:  p.RejectionReason(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	status := payment.Status(model.Status)
	switch status {
	case payment.StatusPending, payment.StatusVerified, payment.StatusRejected:
	default:
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	return payment.ReconstructPayment(payment.PaymentReconstructParams{
		ID:               model.ID,
		PaymentID:        model.PaymentID,
		TelegramID:       model.TelegramID,
		Amount:           model.Amount,
		PlanType:         model.PlanType,
		Platforms:        model.Platforms,
		UPIID:            model.UPIID,
		TransactionID:    model.TransactionID,
		ScreenshotURL:    model.ScreenshotURL,
		Status:           status,
		VerificationDate: model.VerificationDate,
		RejectionReason:  model.RejectionReason,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}), nil
}

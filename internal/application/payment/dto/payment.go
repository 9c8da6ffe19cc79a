// Package dto defines payment-facing response shapes for the admin API.
package dto

import (
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/shared/biztime"
)

type PaymentResponse struct {
	PaymentID        string   `json:"payment_id"`
	TelegramID       int64    `json:"telegram_id"`
	Amount           float64  `json:"amount"`
	PlanType         string   `json:"plan_type"`
	Platforms        []string `json:"platforms"`
	UPIID            string   `json:"upi_id"`
	TransactionID    *string  `json:"transaction_id,omitempty"`
	ScreenshotURL    *string  `json:"screenshot_url,omitempty"`
	Status           string   `json:"status"`
	VerificationDate string   `json:"verification_date,omitempty"`
	RejectionReason  *string  `json:"rejection_reason,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Skip     int               `json:"skip"`
}

type ActionResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"payment_id"`
}

func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	platforms := p.Platforms()
	if platforms == nil {
		platforms = []string{}
	}

	return PaymentResponse{
		PaymentID:        p.PaymentID(),
		TelegramID:       p.TelegramID(),
		Amount:           p.Amount(),
		PlanType:         p.PlanType(),
		Platforms:        platforms,
		UPIID:            p.UPIID(),
		TransactionID:    p.TransactionID(),
		ScreenshotURL:    p.ScreenshotURL(),
		Status:           string(p.Status()),
		VerificationDate: biztime.FormatRFC3339Ptr(p.VerificationDate()),
		RejectionReason:  p.RejectionReason(),
		CreatedAt:        biztime.FormatRFC3339(p.CreatedAt()),
	}
}

func NewPaymentListResponse(payments []*payment.Payment, total int64, limit, skip int) PaymentListResponse {
	items := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, NewPaymentResponse(p))
	}

	return PaymentListResponse{
		Payments: items,
		Total:    total,
		Limit:    limit,
		Skip:     skip,
	}
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/infrastructure/persistence/mappers"
	"streamdesk/internal/infrastructure/persistence/models"
	"streamdesk/internal/shared/db"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.SetID(model.ID)

	return nil
}

func (r *PaymentRepository) UpdateFromPending(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	// Guarding on the stored status makes the transition atomic: of two
	// racing approves only one row update matches.
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", model.ID, payment.StatusPending).
		Updates(map[string]interface{}{
			"status":            model.Status,
			"transaction_id":    model.TransactionID,
			"screenshot_url":    model.ScreenshotURL,
			"verification_date": model.VerificationDate,
			"rejection_reason":  model.RejectionReason,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return payment.ErrNotPending
	}

	return nil
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payment_id = ?", paymentID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment not found")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) List(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PaymentModel{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var paymentModels []models.PaymentModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		Find(&paymentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*payment.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		p, err := mappers.PaymentToDomain(&paymentModels[i])
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}

	return payments, total, nil
}

func (r *PaymentRepository) ListByTelegramID(ctx context.Context, telegramID int64) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("telegram_id = ?", telegramID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments by telegram id: %w", err)
	}

	payments := make([]*payment.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		p, err := mappers.PaymentToDomain(&paymentModels[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

func (r *PaymentRepository) DeleteByTelegramID(ctx context.Context, telegramID int64) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("telegram_id = ?", telegramID).
		Delete(&models.PaymentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete payments: %w", err)
	}

	return nil
}

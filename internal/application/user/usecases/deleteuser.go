package usecases

import (
	"context"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/db"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// DeleteUserUseCase removes a user together with their payment history.
// Both deletions run in one transaction so a failure leaves no orphans.
type DeleteUserUseCase struct {
	userRepo    user.UserRepository
	paymentRepo payment.PaymentRepository
	txManager   db.TxRunner
	logger      logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.UserRepository,
	paymentRepo payment.PaymentRepository,
	txManager db.TxRunner,
	log logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      log,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, telegramID int64) error {
	if _, err := uc.userRepo.GetByTelegramID(ctx, telegramID); err != nil {
		return errors.NewNotFoundError("User not found")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.paymentRepo.DeleteByTelegramID(txCtx, telegramID); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, telegramID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "telegram_id", telegramID, "error", err)
		return errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted", "telegram_id", telegramID)
	return nil
}

package usecases

import (
	"context"

	"streamdesk/internal/application/payment/dto"
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/infrastructure/cache"
	"streamdesk/internal/shared/biztime"
	"streamdesk/internal/shared/db"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// ApprovePaymentUseCase verifies a pending payment and activates the
// purchased subscription on the owning user. The payment update and the
// user update commit together or not at all.
type ApprovePaymentUseCase struct {
	paymentRepo payment.PaymentRepository
	userRepo    user.UserRepository
	txManager   db.TxRunner
	statsCache  *cache.StatsCache
	logger      logger.Interface
}

func NewApprovePaymentUseCase(
	paymentRepo payment.PaymentRepository,
	userRepo user.UserRepository,
	txManager db.TxRunner,
	statsCache *cache.StatsCache,
	log logger.Interface,
) *ApprovePaymentUseCase {
	return &ApprovePaymentUseCase{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		statsCache:  statsCache,
		logger:      log,
	}
}

func (uc *ApprovePaymentUseCase) Execute(ctx context.Context, paymentID string) (*dto.ActionResponse, error) {
	p, err := uc.paymentRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, errors.NewNotFoundError("Payment not found")
	}

	if p.Status() != payment.StatusPending {
		return nil, errors.NewBadRequestError("Payment is not pending")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := p.Approve(); err != nil {
			return errors.NewBadRequestError(err.Error())
		}
		if err := uc.paymentRepo.UpdateFromPending(txCtx, p); err != nil {
			if err == payment.ErrNotPending {
				return errors.NewBadRequestError("Payment is not pending")
			}
			return err
		}

		u, err := uc.userRepo.GetByTelegramID(txCtx, p.TelegramID())
		if err != nil {
			return errors.NewNotFoundError("User not found")
		}

		expiry := biztime.NowUTC().Add(user.PlanDuration(p.PlanType()))
		sub, err := user.NewSubscription(p.PlanType(), expiry, p.Amount())
		if err != nil {
			return err
		}

		u.ActivateSubscription(sub)
		return uc.userRepo.Update(txCtx, u)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to approve payment", "payment_id", paymentID, "error", err)
		return nil, errors.NewInternalError("failed to approve payment")
	}

	// Revenue figures changed; drop the cached snapshot.
	if err := uc.statsCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate stats cache", "error", err)
	}

	uc.logger.Infow("payment approved",
		"payment_id", paymentID,
		"telegram_id", p.TelegramID(),
		"plan_type", p.PlanType(),
		"amount", p.Amount())

	return &dto.ActionResponse{
		Message:   "Payment approved",
		PaymentID: paymentID,
	}, nil
}

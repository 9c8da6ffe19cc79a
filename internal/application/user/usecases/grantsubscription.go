package usecases

import (
	"context"

	"streamdesk/internal/application/user/dto"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/biztime"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
	"streamdesk/internal/shared/utils"
)

// GrantSubscriptionRequest grants a subscription manually, outside the
// payment approval flow (compensation, promos, support cases).
type GrantSubscriptionRequest struct {
	PlanType   string  `json:"plan_type" binding:"required" validate:"required"`
	AmountPaid float64 `json:"amount_paid" binding:"min=0" validate:"min=0"`
}

type GrantSubscriptionUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGrantSubscriptionUseCase(userRepo user.UserRepository, log logger.Interface) *GrantSubscriptionUseCase {
	return &GrantSubscriptionUseCase{userRepo: userRepo, logger: log}
}

func (uc *GrantSubscriptionUseCase) Execute(ctx context.Context, telegramID int64, req GrantSubscriptionRequest) (*dto.UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	expiry := biztime.NowUTC().Add(user.PlanDuration(req.PlanType))
	sub, err := user.NewSubscription(req.PlanType, expiry, req.AmountPaid)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u.ActivateSubscription(sub)

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to grant subscription", "telegram_id", telegramID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("subscription granted",
		"telegram_id", telegramID,
		"plan_type", req.PlanType,
		"expiry_date", expiry)

	resp := dto.NewUserResponse(u)
	return &resp, nil
}

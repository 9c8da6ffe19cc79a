package usecases

import (
	"context"

	paymentDto "streamdesk/internal/application/payment/dto"
	"streamdesk/internal/application/user/dto"
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// UserDetailResponse pairs a user with their full payment history for the
// detail panel.
type UserDetailResponse struct {
	User     dto.UserResponse             `json:"user"`
	Payments []paymentDto.PaymentResponse `json:"payments"`
}

type GetUserDetailUseCase struct {
	userRepo    user.UserRepository
	paymentRepo payment.PaymentRepository
	logger      logger.Interface
}

func NewGetUserDetailUseCase(
	userRepo user.UserRepository,
	paymentRepo payment.PaymentRepository,
	log logger.Interface,
) *GetUserDetailUseCase {
	return &GetUserDetailUseCase{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		logger:      log,
	}
}

func (uc *GetUserDetailUseCase) Execute(ctx context.Context, telegramID int64) (*UserDetailResponse, error) {
	u, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	payments, err := uc.paymentRepo.ListByTelegramID(ctx, telegramID)
	if err != nil {
		uc.logger.Errorw("failed to load payment history", "telegram_id", telegramID, "error", err)
		return nil, errors.NewInternalError("failed to load payment history")
	}

	paymentItems := make([]paymentDto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		paymentItems = append(paymentItems, paymentDto.NewPaymentResponse(p))
	}

	return &UserDetailResponse{
		User:     dto.NewUserResponse(u),
		Payments: paymentItems,
	}, nil
}

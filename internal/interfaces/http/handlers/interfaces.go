package handlers

import (
	"context"

	adminDto "streamdesk/internal/application/admin/dto"
	broadcastDto "streamdesk/internal/application/broadcast/dto"
	paymentDto "streamdesk/internal/application/payment/dto"
	userDto "streamdesk/internal/application/user/dto"
	userUsecases "streamdesk/internal/application/user/usecases"
	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/user"
)

// Executor interfaces decouple handlers from concrete use cases so tests
// can substitute them.

type GetStatisticsExecutor interface {
	Execute(ctx context.Context) (*adminDto.StatisticsResponse, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, filter user.ListFilter) (*userDto.UserListResponse, error)
}

type GetUserDetailExecutor interface {
	Execute(ctx context.Context, telegramID int64) (*userUsecases.UserDetailResponse, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, telegramID int64) error
}

type GrantSubscriptionExecutor interface {
	Execute(ctx context.Context, telegramID int64, req userUsecases.GrantSubscriptionRequest) (*userDto.UserResponse, error)
}

type ListPaymentsExecutor interface {
	Execute(ctx context.Context, filter payment.ListFilter) (*paymentDto.PaymentListResponse, error)
}

type ApprovePaymentExecutor interface {
	Execute(ctx context.Context, paymentID string) (*paymentDto.ActionResponse, error)
}

type RejectPaymentExecutor interface {
	Execute(ctx context.Context, paymentID, reason string) (*paymentDto.ActionResponse, error)
}

type SendBroadcastExecutor interface {
	Execute(ctx context.Context, req broadcastDto.SendBroadcastRequest) (*broadcastDto.SendBroadcastResponse, error)
}

type ListBroadcastsExecutor interface {
	Execute(ctx context.Context, limit int) (*broadcastDto.BroadcastListResponse, error)
}

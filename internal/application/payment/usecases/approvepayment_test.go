package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/infrastructure/cache"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

func pendingPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(555, 299.0, "monthly", []string{"netflix"}, "merchant@upi")
	require.NoError(t, err)
	return p
}

func existingUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(555, "alice", "Alice", "")
	require.NoError(t, err)
	return u
}

func newApproveUseCase(paymentRepo *mockPaymentRepository, userRepo *mockUserRepository) *ApprovePaymentUseCase {
	return NewApprovePaymentUseCase(
		paymentRepo,
		userRepo,
		fakeTxRunner{},
		cache.NewStatsCache(nil, time.Minute),
		logger.NewLogger(),
	)
}

func TestApprovePayment_Success(t *testing.T) {
	p := pendingPayment(t)
	u := existingUser(t)

	var updatedPayment *payment.Payment
	var updatedUser *user.User

	paymentRepo := &mockPaymentRepository{
		GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
			return p, nil
		},
		UpdateFromPendingFunc: func(ctx context.Context, p *payment.Payment) error {
			updatedPayment = p
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByTelegramIDFunc: func(ctx context.Context, telegramID int64) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updatedUser = u
			return nil
		},
	}

	resp, err := newApproveUseCase(paymentRepo, userRepo).Execute(context.Background(), p.PaymentID())

	require.NoError(t, err)
	assert.Equal(t, p.PaymentID(), resp.PaymentID)

	require.NotNil(t, updatedPayment)
	assert.Equal(t, payment.StatusVerified, updatedPayment.Status())
	require.NotNil(t, updatedPayment.VerificationDate())

	require.NotNil(t, updatedUser)
	assert.True(t, updatedUser.HasActiveSubscription())
	assert.Equal(t, 299.0, updatedUser.TotalSpent())

	subs := updatedUser.ActiveSubscriptions()
	require.Len(t, subs, 1)
	assert.Equal(t, "monthly", subs[0].PlanType())
	assert.WithinDuration(t,
		time.Now().UTC().Add(30*24*time.Hour),
		subs[0].ExpiryDate(),
		time.Minute,
	)
}

func TestApprovePayment_PlanDurations(t *testing.T) {
	tests := []struct {
		planType string
		wantDays int
	}{
		{planType: "weekly", wantDays: 7},
		{planType: "yearly", wantDays: 365},
		{planType: "monthly", wantDays: 30},
		{planType: "custom", wantDays: 30},
	}

	for _, tt := range tests {
		t.Run(tt.planType, func(t *testing.T) {
			p, err := payment.NewPayment(555, 100, tt.planType, nil, "merchant@upi")
			require.NoError(t, err)
			u := existingUser(t)

			paymentRepo := &mockPaymentRepository{
				GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
					return p, nil
				},
			}
			userRepo := &mockUserRepository{
				GetByTelegramIDFunc: func(ctx context.Context, telegramID int64) (*user.User, error) {
					return u, nil
				},
			}

			_, err = newApproveUseCase(paymentRepo, userRepo).Execute(context.Background(), p.PaymentID())

			require.NoError(t, err)
			subs := u.ActiveSubscriptions()
			require.Len(t, subs, 1)
			assert.WithinDuration(t,
				time.Now().UTC().Add(time.Duration(tt.wantDays)*24*time.Hour),
				subs[0].ExpiryDate(),
				time.Minute,
			)
		})
	}
}

func TestApprovePayment_NotFound(t *testing.T) {
	paymentRepo := &mockPaymentRepository{
		GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
			return nil, assert.AnError
		},
	}

	_, err := newApproveUseCase(paymentRepo, &mockUserRepository{}).Execute(context.Background(), "pay_missing")

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestApprovePayment_NotPending(t *testing.T) {
	p := pendingPayment(t)
	require.NoError(t, p.Approve())

	updateCalled := false
	paymentRepo := &mockPaymentRepository{
		GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
			return p, nil
		},
		UpdateFromPendingFunc: func(ctx context.Context, p *payment.Payment) error {
			updateCalled = true
			return nil
		},
	}

	_, err := newApproveUseCase(paymentRepo, &mockUserRepository{}).Execute(context.Background(), p.PaymentID())

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Payment is not pending", appErr.Detail())
	assert.False(t, updateCalled)
}

func TestApprovePayment_LostRaceIsBadRequest(t *testing.T) {
	p := pendingPayment(t)

	userUpdated := false
	paymentRepo := &mockPaymentRepository{
		GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
			return p, nil
		},
		// The in-memory payment still looks pending, but the stored row was
		// settled by a concurrent reviewer between read and write.
		UpdateFromPendingFunc: func(ctx context.Context, p *payment.Payment) error {
			return payment.ErrNotPending
		},
	}
	userRepo := &mockUserRepository{
		GetByTelegramIDFunc: func(ctx context.Context, telegramID int64) (*user.User, error) {
			return existingUser(t), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			userUpdated = true
			return nil
		},
	}

	_, err := newApproveUseCase(paymentRepo, userRepo).Execute(context.Background(), p.PaymentID())

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Payment is not pending", appErr.Detail())
	assert.False(t, userUpdated, "losing approve must not grant the subscription")
}

func TestRejectPayment(t *testing.T) {
	t.Run("pending payment rejected with reason", func(t *testing.T) {
		p := pendingPayment(t)

		paymentRepo := &mockPaymentRepository{
			GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
				return p, nil
			},
		}
		uc := NewRejectPaymentUseCase(paymentRepo, logger.NewLogger())

		resp, err := uc.Execute(context.Background(), p.PaymentID(), "unreadable screenshot")

		require.NoError(t, err)
		assert.Equal(t, p.PaymentID(), resp.PaymentID)
		assert.Equal(t, payment.StatusRejected, p.Status())
		require.NotNil(t, p.RejectionReason())
		assert.Equal(t, "unreadable screenshot", *p.RejectionReason())
	})

	t.Run("empty reason records the default", func(t *testing.T) {
		p := pendingPayment(t)

		paymentRepo := &mockPaymentRepository{
			GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
				return p, nil
			},
		}
		uc := NewRejectPaymentUseCase(paymentRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), p.PaymentID(), "")

		require.NoError(t, err)
		require.NotNil(t, p.RejectionReason())
		assert.Equal(t, payment.DefaultRejectionReason, *p.RejectionReason())
	})

	t.Run("lost race against another reviewer is a bad request", func(t *testing.T) {
		p := pendingPayment(t)

		paymentRepo := &mockPaymentRepository{
			GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
				return p, nil
			},
			UpdateFromPendingFunc: func(ctx context.Context, p *payment.Payment) error {
				return payment.ErrNotPending
			},
		}
		uc := NewRejectPaymentUseCase(paymentRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), p.PaymentID(), "too slow")

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Payment is not pending", appErr.Detail())
	})

	t.Run("verified payment cannot be rejected", func(t *testing.T) {
		p := pendingPayment(t)
		require.NoError(t, p.Approve())

		paymentRepo := &mockPaymentRepository{
			GetByPaymentIDFunc: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
				return p, nil
			},
		}
		uc := NewRejectPaymentUseCase(paymentRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), p.PaymentID(), "too late")

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestListPayments_InvalidStatus(t *testing.T) {
	uc := NewListPaymentsUseCase(&mockPaymentRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), payment.ListFilter{Limit: 10, Status: "paid"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestListPayments_PassesFilter(t *testing.T) {
	var gotFilter payment.ListFilter
	paymentRepo := &mockPaymentRepository{
		ListFunc: func(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, int64, error) {
			gotFilter = filter
			return []*payment.Payment{pendingPayment(t)}, 1, nil
		},
	}
	uc := NewListPaymentsUseCase(paymentRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), payment.ListFilter{Limit: 20, Skip: 40, Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, "pending", gotFilter.Status)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 40, resp.Skip)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "pending", resp.Payments[0].Status)
}

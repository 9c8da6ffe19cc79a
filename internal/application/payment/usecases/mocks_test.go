package usecases

import (
	"context"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/user"
)

type mockPaymentRepository struct {
	CreateFunc             func(ctx context.Context, p *payment.Payment) error
	UpdateFromPendingFunc  func(ctx context.Context, p *payment.Payment) error
	GetByPaymentIDFunc     func(ctx context.Context, paymentID string) (*payment.Payment, error)
	ListFunc               func(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, int64, error)
	ListByTelegramIDFunc   func(ctx context.Context, telegramID int64) ([]*payment.Payment, error)
	DeleteByTelegramIDFunc func(ctx context.Context, telegramID int64) error
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepository) UpdateFromPending(ctx context.Context, p *payment.Payment) error {
	if m.UpdateFromPendingFunc != nil {
		return m.UpdateFromPendingFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	if m.GetByPaymentIDFunc != nil {
		return m.GetByPaymentIDFunc(ctx, paymentID)
	}
	return nil, nil
}

func (m *mockPaymentRepository) List(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPaymentRepository) ListByTelegramID(ctx context.Context, telegramID int64) ([]*payment.Payment, error) {
	if m.ListByTelegramIDFunc != nil {
		return m.ListByTelegramIDFunc(ctx, telegramID)
	}
	return nil, nil
}

func (m *mockPaymentRepository) DeleteByTelegramID(ctx context.Context, telegramID int64) error {
	if m.DeleteByTelegramIDFunc != nil {
		return m.DeleteByTelegramIDFunc(ctx, telegramID)
	}
	return nil
}

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	GetByTelegramIDFunc         func(ctx context.Context, telegramID int64) (*user.User, error)
	ListFunc                    func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	DeleteFunc                  func(ctx context.Context, telegramID int64) error
	ListTelegramIDsByStatusFunc func(ctx context.Context, status string) ([]int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	if m.GetByTelegramIDFunc != nil {
		return m.GetByTelegramIDFunc(ctx, telegramID)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, telegramID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, telegramID)
	}
	return nil
}

func (m *mockUserRepository) ListTelegramIDsByStatus(ctx context.Context, status string) ([]int64, error) {
	if m.ListTelegramIDsByStatusFunc != nil {
		return m.ListTelegramIDsByStatusFunc(ctx, status)
	}
	return nil, nil
}

// fakeTxRunner runs the callback directly without a real transaction.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

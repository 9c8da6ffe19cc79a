package usecases

import (
	"context"

	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/domain/user"
)

type mockBroadcastRepository struct {
	CreateFunc           func(ctx context.Context, b *broadcast.Broadcast) error
	UpdateFunc           func(ctx context.Context, b *broadcast.Broadcast) error
	GetByBroadcastIDFunc func(ctx context.Context, broadcastID string) (*broadcast.Broadcast, error)
	ListFunc             func(ctx context.Context, limit int) ([]*broadcast.Broadcast, error)
	NextQueuedFunc       func(ctx context.Context) (*broadcast.Broadcast, error)
}

func (m *mockBroadcastRepository) Create(ctx context.Context, b *broadcast.Broadcast) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBroadcastRepository) Update(ctx context.Context, b *broadcast.Broadcast) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBroadcastRepository) GetByBroadcastID(ctx context.Context, broadcastID string) (*broadcast.Broadcast, error) {
	if m.GetByBroadcastIDFunc != nil {
		return m.GetByBroadcastIDFunc(ctx, broadcastID)
	}
	return nil, nil
}

func (m *mockBroadcastRepository) List(ctx context.Context, limit int) ([]*broadcast.Broadcast, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockBroadcastRepository) NextQueued(ctx context.Context) (*broadcast.Broadcast, error) {
	if m.NextQueuedFunc != nil {
		return m.NextQueuedFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	ListTelegramIDsByStatusFunc func(ctx context.Context, status string) ([]int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (m *mockUserRepository) Delete(ctx context.Context, telegramID int64) error { return nil }

func (m *mockUserRepository) ListTelegramIDsByStatus(ctx context.Context, status string) ([]int64, error) {
	if m.ListTelegramIDsByStatusFunc != nil {
		return m.ListTelegramIDsByStatusFunc(ctx, status)
	}
	return nil, nil
}

type mockSender struct {
	SendMessageFunc func(ctx context.Context, chatID int64, text string) error
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, chatID, text)
	}
	return nil
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamdesk/internal/application/broadcast/dto"
	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

func TestSendBroadcast_Success(t *testing.T) {
	var created *broadcast.Broadcast
	var requestedStatus string

	broadcastRepo := &mockBroadcastRepository{
		CreateFunc: func(ctx context.Context, b *broadcast.Broadcast) error {
			created = b
			return nil
		},
	}
	userRepo := &mockUserRepository{
		ListTelegramIDsByStatusFunc: func(ctx context.Context, status string) ([]int64, error) {
			requestedStatus = status
			return []int64{10, 20, 30}, nil
		},
	}
	uc := NewSendBroadcastUseCase(broadcastRepo, userRepo, 0, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.SendBroadcastRequest{
		Message: "  Hello  ",
		Target:  "active",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.RecipientCount)
	assert.Equal(t, "active", requestedStatus)

	require.NotNil(t, created)
	assert.Equal(t, "Hello", created.Message())
	assert.Equal(t, broadcast.TargetActive, created.Target())
	assert.Equal(t, broadcast.StatusQueued, created.Status())
	assert.Equal(t, []int64{10, 20, 30}, created.Recipients())
	assert.Equal(t, created.BroadcastID(), resp.BroadcastID)
}

func TestSendBroadcast_Validation(t *testing.T) {
	tests := []struct {
		name    string
		message string
		target  string
	}{
		{name: "empty message", message: "", target: "all"},
		{name: "whitespace message", message: "   ", target: "all"},
		{name: "invalid target", message: "hello", target: "everyone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createCalled := false
			broadcastRepo := &mockBroadcastRepository{
				CreateFunc: func(ctx context.Context, b *broadcast.Broadcast) error {
					createCalled = true
					return nil
				},
			}
			uc := NewSendBroadcastUseCase(broadcastRepo, &mockUserRepository{}, 0, logger.NewLogger())

			_, err := uc.Execute(context.Background(), dto.SendBroadcastRequest{
				Message: tt.message,
				Target:  tt.target,
			})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			assert.False(t, createCalled)
		})
	}
}

func TestSendBroadcast_TargetMapping(t *testing.T) {
	tests := []struct {
		target     string
		wantStatus string
	}{
		{target: "all", wantStatus: "all"},
		{target: "active", wantStatus: "active"},
		{target: "expired", wantStatus: "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var requestedStatus string
			userRepo := &mockUserRepository{
				ListTelegramIDsByStatusFunc: func(ctx context.Context, status string) ([]int64, error) {
					requestedStatus = status
					return []int64{1}, nil
				},
			}
			uc := NewSendBroadcastUseCase(&mockBroadcastRepository{}, userRepo, 0, logger.NewLogger())

			_, err := uc.Execute(context.Background(), dto.SendBroadcastRequest{
				Message: "hello",
				Target:  tt.target,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, requestedStatus)
		})
	}
}

func TestSendBroadcast_RecipientLimit(t *testing.T) {
	userRepo := &mockUserRepository{
		ListTelegramIDsByStatusFunc: func(ctx context.Context, status string) ([]int64, error) {
			return []int64{1, 2, 3, 4, 5}, nil
		},
	}
	uc := NewSendBroadcastUseCase(&mockBroadcastRepository{}, userRepo, 3, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.SendBroadcastRequest{
		Message: "hello",
		Target:  "all",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

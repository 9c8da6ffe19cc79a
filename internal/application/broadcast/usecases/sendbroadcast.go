package usecases

import (
	"context"
	"strings"

	"streamdesk/internal/application/broadcast/dto"
	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// SendBroadcastUseCase queues a broadcast. The recipient list is resolved
// and frozen here, so the reported recipient_count is exactly the set the
// worker will attempt to reach.
type SendBroadcastUseCase struct {
	broadcastRepo broadcast.BroadcastRepository
	userRepo      user.UserRepository
	maxRecipients int
	logger        logger.Interface
}

func NewSendBroadcastUseCase(
	broadcastRepo broadcast.BroadcastRepository,
	userRepo user.UserRepository,
	maxRecipients int,
	log logger.Interface,
) *SendBroadcastUseCase {
	return &SendBroadcastUseCase{
		broadcastRepo: broadcastRepo,
		userRepo:      userRepo,
		maxRecipients: maxRecipients,
		logger:        log,
	}
}

func (uc *SendBroadcastUseCase) Execute(ctx context.Context, req dto.SendBroadcastRequest) (*dto.SendBroadcastResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, errors.NewValidationError("Message cannot be empty")
	}

	target := broadcast.Target(req.Target)
	if !target.Valid() {
		return nil, errors.NewValidationError("Invalid target audience")
	}

	recipients, err := uc.userRepo.ListTelegramIDsByStatus(ctx, targetStatus(target))
	if err != nil {
		uc.logger.Errorw("failed to resolve broadcast recipients", "target", target, "error", err)
		return nil, errors.NewInternalError("failed to resolve recipients")
	}

	if uc.maxRecipients > 0 && len(recipients) > uc.maxRecipients {
		return nil, errors.NewValidationError("Recipient count exceeds broadcast limit")
	}

	b, err := broadcast.NewBroadcast(message, target, recipients)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.broadcastRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to queue broadcast", "error", err)
		return nil, errors.NewInternalError("failed to queue broadcast")
	}

	uc.logger.Infow("broadcast queued",
		"broadcast_id", b.BroadcastID(),
		"target", target,
		"recipient_count", b.RecipientCount())

	return &dto.SendBroadcastResponse{
		Message:        "Broadcast queued",
		BroadcastID:    b.BroadcastID(),
		RecipientCount: b.RecipientCount(),
	}, nil
}

func targetStatus(target broadcast.Target) string {
	switch target {
	case broadcast.TargetActive:
		return user.StatusActive
	case broadcast.TargetExpired:
		return user.StatusExpired
	default:
		return user.StatusAll
	}
}

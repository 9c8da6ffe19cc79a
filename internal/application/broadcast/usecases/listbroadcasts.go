package usecases

import (
	"context"

	"streamdesk/internal/application/broadcast/dto"
	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// ListBroadcastsUseCase returns broadcast history, newest first.
type ListBroadcastsUseCase struct {
	broadcastRepo broadcast.BroadcastRepository
	logger        logger.Interface
}

func NewListBroadcastsUseCase(broadcastRepo broadcast.BroadcastRepository, log logger.Interface) *ListBroadcastsUseCase {
	return &ListBroadcastsUseCase{broadcastRepo: broadcastRepo, logger: log}
}

func (uc *ListBroadcastsUseCase) Execute(ctx context.Context, limit int) (*dto.BroadcastListResponse, error) {
	broadcasts, err := uc.broadcastRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list broadcasts", "error", err)
		return nil, errors.NewInternalError("failed to list broadcasts")
	}

	resp := dto.NewBroadcastListResponse(broadcasts)
	return &resp, nil
}

package usecases

import (
	"context"

	"streamdesk/internal/application/user/dto"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

// ListUsersUseCase handles the user directory listing with search and
// status filtering.
type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: log}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, filter user.ListFilter) (*dto.UserListResponse, error) {
	if filter.Status != "" && !user.ValidStatus(filter.Status) {
		return nil, errors.NewValidationError("invalid status filter")
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	resp := dto.NewUserListResponse(users, total, filter.Limit, filter.Skip)
	return &resp, nil
}

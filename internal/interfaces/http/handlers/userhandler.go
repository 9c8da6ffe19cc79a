package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	userUsecases "streamdesk/internal/application/user/usecases"
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
	"streamdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC         ListUsersExecutor
	getUserDetailUC     GetUserDetailExecutor
	deleteUserUC        DeleteUserExecutor
	grantSubscriptionUC GrantSubscriptionExecutor
	logger              logger.Interface
}

func NewUserHandler(
	listUsersUC ListUsersExecutor,
	getUserDetailUC GetUserDetailExecutor,
	deleteUserUC DeleteUserExecutor,
	grantSubscriptionUC GrantSubscriptionExecutor,
) *UserHandler {
	return &UserHandler{
		listUsersUC:         listUsersUC,
		getUserDetailUC:     getUserDetailUC,
		deleteUserUC:        deleteUserUC,
		grantSubscriptionUC: grantSubscriptionUC,
		logger:              logger.NewLogger(),
	}
}

// ListUsers handles GET /api/admin/users
// @Summary List users
// @Description Lists bot users with optional search and status filter
// @Tags Users
// @Produce json
// @Param limit query int false "Page size"
// @Param skip query int false "Offset"
// @Param search query string false "Username, first name or telegram ID"
// @Param status query string false "Status filter" Enums(all, active, expired)
// @Success 200 {object} dto.UserListResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	filter := user.ListFilter{
		Limit:  pagination.Limit,
		Skip:   pagination.Skip,
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// GetUserDetail handles GET /api/admin/users/:telegram_id
// @Summary Get user detail
// @Description Returns a user together with their full payment history
// @Tags Users
// @Produce json
// @Param telegram_id path int true "Telegram ID"
// @Success 200 {object} usecases.UserDetailResponse
// @Failure 404 {object} utils.ErrorDetail
// @Router /admin/users/{telegram_id} [get]
func (h *UserHandler) GetUserDetail(c *gin.Context) {
	telegramID, err := parseTelegramID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}

	result, err := h.getUserDetailUC.Execute(c.Request.Context(), telegramID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// DeleteUser handles DELETE /api/admin/users/:telegram_id
// @Summary Delete user
// @Description Removes a user and their payment history
// @Tags Users
// @Produce json
// @Param telegram_id path int true "Telegram ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorDetail
// @Router /admin/users/{telegram_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	telegramID, err := parseTelegramID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), telegramID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, gin.H{"message": "User deleted"})
}

// GrantSubscription handles PUT /api/admin/users/:telegram_id/subscription
// @Summary Grant subscription
// @Description Manually activates a subscription on a user
// @Tags Users
// @Accept json
// @Produce json
// @Param telegram_id path int true "Telegram ID"
// @Param request body usecases.GrantSubscriptionRequest true "Subscription to grant"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} utils.ErrorDetail
// @Failure 404 {object} utils.ErrorDetail
// @Router /admin/users/{telegram_id}/subscription [put]
func (h *UserHandler) GrantSubscription(c *gin.Context) {
	telegramID, err := parseTelegramID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}

	var req userUsecases.GrantSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid grant subscription request", "error", err)
		utils.ErrorMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.grantSubscriptionUC.Execute(c.Request.Context(), telegramID, req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

func parseTelegramID(c *gin.Context) (int64, error) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil || telegramID == 0 {
		return 0, errors.NewValidationError("Invalid telegram ID")
	}
	return telegramID, nil
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	broadcastDto "streamdesk/internal/application/broadcast/dto"
	"streamdesk/internal/shared/logger"
	"streamdesk/internal/shared/utils"
)

type BroadcastHandler struct {
	sendBroadcastUC  SendBroadcastExecutor
	listBroadcastsUC ListBroadcastsExecutor
	logger           logger.Interface
}

func NewBroadcastHandler(
	sendBroadcastUC SendBroadcastExecutor,
	listBroadcastsUC ListBroadcastsExecutor,
) *BroadcastHandler {
	return &BroadcastHandler{
		sendBroadcastUC:  sendBroadcastUC,
		listBroadcastsUC: listBroadcastsUC,
		logger:           logger.NewLogger(),
	}
}

// SendBroadcast handles POST /api/admin/broadcast
// @Summary Queue a broadcast
// @Description Freezes the recipient list for the target audience and queues delivery
// @Tags Broadcasts
// @Accept json
// @Produce json
// @Param request body dto.SendBroadcastRequest true "Message and target audience"
// @Success 200 {object} dto.SendBroadcastResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /admin/broadcast [post]
func (h *BroadcastHandler) SendBroadcast(c *gin.Context) {
	var req broadcastDto.SendBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid broadcast request", "error", err)
		utils.ErrorMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.sendBroadcastUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// ListBroadcasts handles GET /api/admin/broadcasts
// @Summary List broadcasts
// @Description Returns broadcast history, newest first
// @Tags Broadcasts
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {object} dto.BroadcastListResponse
// @Failure 500 {object} utils.ErrorDetail
// @Router /admin/broadcasts [get]
func (h *BroadcastHandler) ListBroadcasts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	result, err := h.listBroadcastsUC.Execute(c.Request.Context(), limit)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

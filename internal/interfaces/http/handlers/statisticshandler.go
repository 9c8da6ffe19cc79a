package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamdesk/internal/shared/utils"
)

type StatisticsHandler struct {
	getStatisticsUC GetStatisticsExecutor
}

func NewStatisticsHandler(getStatisticsUC GetStatisticsExecutor) *StatisticsHandler {
	return &StatisticsHandler{
		getStatisticsUC: getStatisticsUC,
	}
}

// GetStatistics handles GET /api/admin/statistics
// @Summary Get overview statistics
// @Description Returns the aggregate snapshot for the dashboard overview
// @Tags Statistics
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} utils.ErrorDetail
// @Router /admin/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	result, err := h.getStatisticsUC.Execute(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
	ucGoal "github.com/FitClubSystems/gym-manager/internal/usecase/goal"
)

type MetricHandler struct {
	db        *gorm.DB
	logMetric *ucGoal.LogMetric
	history   *ucGoal.MetricHistory
}

func NewMetricHandler(
	db *gorm.DB,
	logMetric *ucGoal.LogMetric,
	history *ucGoal.MetricHistory,
) *MetricHandler {
	return &MetricHandler{
		db:        db,
		logMetric: logMetric,
		history:   history,
	}
}

func (h *MetricHandler) ListTypes(c *gin.Context) {
	var types []models.MetricType
	if err := h.db.Order("id ASC").Find(&types).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list metric types")
		return
	}
	httpresp.List(c, types)
}

type LogMetricRequest struct {
	MetricTypeID uint    `json:"metric_type_id" binding:"required"`
	Value        float64 `json:"value" binding:"required"`
}

func (h *MetricHandler) Log(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req LogMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid metric payload")
		return
	}

	m, err := h.logMetric.Execute(c.Request.Context(), userID, req.MetricTypeID, req.Value)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, m)
}

func (h *MetricHandler) History(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	groups, err := h.history.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, groups)
}

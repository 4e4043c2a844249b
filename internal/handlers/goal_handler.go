package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	ucGoal "github.com/FitClubSystems/gym-manager/internal/usecase/goal"
)

type GoalHandler struct {
	setGoal  *ucGoal.SetGoal
	progress *ucGoal.Progress
}

func NewGoalHandler(
	setGoal *ucGoal.SetGoal,
	progress *ucGoal.Progress,
) *GoalHandler {
	return &GoalHandler{
		setGoal:  setGoal,
		progress: progress,
	}
}

type SetGoalRequest struct {
	MetricTypeID uint    `json:"metric_type_id" binding:"required"`
	TargetValue  float64 `json:"target_value" binding:"required"`
	GoalDate     string  `json:"goal_date" binding:"required"`
	Overwrite    bool    `json:"overwrite"`
}

func (h *GoalHandler) Set(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid goal payload")
		return
	}

	saved, existing, err := h.setGoal.Execute(c.Request.Context(), ucGoal.SetGoalInput{
		UserID:       userID,
		MetricTypeID: req.MetricTypeID,
		TargetValue:  req.TargetValue,
		GoalDate:     req.GoalDate,
		Overwrite:    req.Overwrite,
	})

	if httperr.IsBusiness(err, "goal_exists") {
		// Existing goal rides along so the client can show it before
		// asking the member to confirm an overwrite.
		c.JSON(http.StatusConflict, gin.H{
			"error_code":    "goal_exists",
			"message":       "a goal for this metric already exists",
			"existing_goal": existing,
		})
		return
	}
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, saved)
}

func (h *GoalHandler) ListProgress(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.progress.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *GoalHandler) GetProgress(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid goal id")
		return
	}

	out, err := h.progress.ForGoal(c.Request.Context(), userID, uint(goalID))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, out)
}

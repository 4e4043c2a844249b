package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// TrainerHandler serves the trainer's member lookup: everyone enrolled
// in one of the trainer's sessions, with their latest reading and goal.
type TrainerHandler struct {
	db *gorm.DB
}

func NewTrainerHandler(db *gorm.DB) *TrainerHandler {
	return &TrainerHandler{db: db}
}

type MemberProfileDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	LastMetric *MemberMetricDTO `json:"last_metric,omitempty"`
	Goal       *MemberGoalDTO   `json:"current_goal,omitempty"`
}

type MemberMetricDTO struct {
	MetricType string    `json:"metric_type"`
	Value      float64   `json:"value"`
	LoggedDate time.Time `json:"logged_date"`
}

type MemberGoalDTO struct {
	MetricType  string    `json:"metric_type"`
	TargetValue float64   `json:"target_value"`
	GoalDate    time.Time `json:"goal_date"`
}

func (h *TrainerHandler) MyMembers(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	var members []models.User
	if err := h.db.
		Distinct("users.*").
		Joins("JOIN enrollments ON enrollments.member_id = users.id").
		Joins("JOIN sessions ON sessions.id = enrollments.session_id").
		Joins("JOIN schedules ON schedules.id = sessions.schedule_id").
		Where("schedules.trainer_id = ?", trainerID).
		Find(&members).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list members")
		return
	}

	out := make([]MemberProfileDTO, 0, len(members))
	for _, m := range members {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.FirstName), search) &&
			!strings.Contains(strings.ToLower(m.LastName), search) {
			continue
		}

		profile := MemberProfileDTO{
			ID:        m.ID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Phone:     m.Phone,
		}

		// Latest real reading, skipping goal target carriers.
		var last models.Metric
		if err := h.db.
			Preload("MetricType").
			Where(
				"user_id = ? AND id NOT IN (?)",
				m.ID,
				h.db.Model(&models.Goal{}).Select("metric_id"),
			).
			Order("logged_date DESC").
			First(&last).Error; err == nil {
			profile.LastMetric = &MemberMetricDTO{
				MetricType: last.MetricType.Name,
				Value:      last.Value,
				LoggedDate: last.LoggedDate,
			}
		}

		var goal models.Goal
		if err := h.db.
			Preload("Metric").
			Preload("Metric.MetricType").
			Where("user_id = ?", m.ID).
			First(&goal).Error; err == nil {
			profile.Goal = &MemberGoalDTO{
				MetricType:  goal.Metric.MetricType.Name,
				TargetValue: goal.Metric.Value,
				GoalDate:    goal.GoalDate,
			}
		}

		out = append(out, profile)
	}

	httpresp.List(c, out)
}

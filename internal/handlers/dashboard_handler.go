package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/config"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/dto"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
	"github.com/FitClubSystems/gym-manager/internal/timezone"
)

// DashboardHandler assembles the member's landing view: recent
// readings, active goals, attendance count and upcoming sessions.
type DashboardHandler struct {
	db     *gorm.DB
	config *config.Config
	repo   domain.Repository
}

func NewDashboardHandler(
	db *gorm.DB,
	cfg *config.Config,
	repo domain.Repository,
) *DashboardHandler {
	return &DashboardHandler{db: db, config: cfg, repo: repo}
}

func (h *DashboardHandler) Member(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	today := timezone.Today(h.config.Timezone)

	var recent []models.Metric
	if err := h.db.
		Preload("MetricType").
		Where(
			"user_id = ? AND id NOT IN (?)",
			userID,
			h.db.Model(&models.Goal{}).Select("metric_id"),
		).
		Order("logged_date DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load metrics")
		return
	}

	var goals []models.Goal
	if err := h.db.
		Preload("Metric").
		Preload("Metric.MetricType").
		Where("user_id = ?", userID).
		Find(&goals).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load goals")
		return
	}

	var attended int64
	if err := h.db.
		Model(&models.Enrollment{}).
		Joins("JOIN sessions ON sessions.id = enrollments.session_id").
		Joins("JOIN schedules ON schedules.id = sessions.schedule_id").
		Where(
			"enrollments.member_id = ? AND enrollments.attended = ? AND schedules.date < ?",
			userID, true, today,
		).
		Count(&attended).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to count attendance")
		return
	}

	enrollments, err := h.repo.ListMemberEnrollments(c.Request.Context(), userID, today)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	upcoming := make([]dto.EnrollmentListDTO, 0, len(enrollments))
	for _, e := range enrollments {
		upcoming = append(upcoming, dto.EnrollmentListDTO{
			ID:          e.ID,
			SessionID:   e.SessionID,
			SessionName: e.Session.Name,
			Date:        e.Session.Schedule.Date,
			StartTime:   e.Session.Schedule.StartTime,
			TrainerName: e.Session.Schedule.Trainer.FullName(),
			Attended:    e.Attended,
		})
		if len(upcoming) == 5 {
			break
		}
	}

	httpresp.OK(c, gin.H{
		"recent_metrics":   recent,
		"active_goals":     goals,
		"classes_attended": attended,
		"upcoming":         upcoming,
	})
}

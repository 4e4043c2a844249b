package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FitClubSystems/gym-manager/internal/config"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/dto"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/timezone"
	ucEnrollment "github.com/FitClubSystems/gym-manager/internal/usecase/enrollment"
	ucSchedule "github.com/FitClubSystems/gym-manager/internal/usecase/schedule"
)

// SessionHandler serves the member-facing session surface: browsing,
// enrolling and cancelling.
type SessionHandler struct {
	config *config.Config
	repo   domain.Repository

	listSessions *ucSchedule.ListUpcomingSessions
	enroll       *ucEnrollment.Enroll
	cancel       *ucEnrollment.Cancel
}

func NewSessionHandler(
	cfg *config.Config,
	repo domain.Repository,
	listSessions *ucSchedule.ListUpcomingSessions,
	enroll *ucEnrollment.Enroll,
	cancel *ucEnrollment.Cancel,
) *SessionHandler {
	return &SessionHandler{
		config:       cfg,
		repo:         repo,
		listSessions: listSessions,
		enroll:       enroll,
		cancel:       cancel,
	}
}

func (h *SessionHandler) Browse(c *gin.Context) {
	from := timezone.Today(h.config.Timezone)

	out, err := h.listSessions.Execute(c.Request.Context(), from)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *SessionHandler) Enroll(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid session id")
		return
	}

	e, err := h.enroll.Execute(c.Request.Context(), uint(sessionID), memberID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, e)
}

func (h *SessionHandler) CancelEnrollment(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)

	enrollmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid enrollment id")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), uint(enrollmentID), memberID); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "cancelled"})
}

func (h *SessionHandler) MyEnrollments(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)
	from := timezone.Today(h.config.Timezone)

	enrollments, err := h.repo.ListMemberEnrollments(c.Request.Context(), memberID, from)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	out := make([]dto.EnrollmentListDTO, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.EnrollmentListDTO{
			ID:          e.ID,
			SessionID:   e.SessionID,
			SessionName: e.Session.Name,
			Date:        e.Session.Schedule.Date,
			StartTime:   e.Session.Schedule.StartTime,
			TrainerName: e.Session.Schedule.Trainer.FullName(),
			Attended:    e.Attended,
		})
	}

	httpresp.List(c, out)
}

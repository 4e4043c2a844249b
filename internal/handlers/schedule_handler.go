package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FitClubSystems/gym-manager/internal/config"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
	"github.com/FitClubSystems/gym-manager/internal/timezone"
	ucEnrollment "github.com/FitClubSystems/gym-manager/internal/usecase/enrollment"
	ucSchedule "github.com/FitClubSystems/gym-manager/internal/usecase/schedule"
)

type ScheduleHandler struct {
	config *config.Config
	repo   domain.Repository

	addAvailability *ucSchedule.AddAvailability
	createClass     *ucSchedule.CreateClass
	cancelSchedule  *ucSchedule.CancelSchedule
	listSchedule    *ucSchedule.ListTrainerSchedule
	markAttendance  *ucEnrollment.MarkAttendance
}

func NewScheduleHandler(
	cfg *config.Config,
	repo domain.Repository,
	addAvailability *ucSchedule.AddAvailability,
	createClass *ucSchedule.CreateClass,
	cancelSchedule *ucSchedule.CancelSchedule,
	listSchedule *ucSchedule.ListTrainerSchedule,
	markAttendance *ucEnrollment.MarkAttendance,
) *ScheduleHandler {
	return &ScheduleHandler{
		config:          cfg,
		repo:            repo,
		addAvailability: addAvailability,
		createClass:     createClass,
		cancelSchedule:  cancelSchedule,
		listSchedule:    listSchedule,
		markAttendance:  markAttendance,
	}
}

// ======================================================
// TRAINER
// ======================================================

func (h *ScheduleHandler) MySchedule(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	from := timezone.Today(h.config.Timezone)

	out, err := h.listSchedule.Execute(c.Request.Context(), trainerID, from)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

type AddAvailabilityRequest struct {
	Date   string `json:"date" binding:"required"`
	Start  string `json:"start_time" binding:"required"`
	End    string `json:"end_time" binding:"required"`
	TypeID uint   `json:"type_id" binding:"required"`
}

func (h *ScheduleHandler) AddAvailability(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid availability payload")
		return
	}

	s, err := h.addAvailability.Execute(c.Request.Context(), ucSchedule.AddAvailabilityInput{
		TrainerID: trainerID,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		TypeID:    req.TypeID,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, s)
}

type MarkAttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

func (h *ScheduleHandler) MarkAttendance(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	enrollmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid enrollment id")
		return
	}

	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid attendance payload")
		return
	}

	e, err := h.markAttendance.Execute(
		c.Request.Context(), trainerID, uint(enrollmentID), *req.Attended,
	)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, e)
}

// ======================================================
// ADMIN + TRAINER (cancel), ADMIN (create class)
// ======================================================

type CreateClassRequest struct {
	TrainerID uint   `json:"trainer_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Start     string `json:"start_time" binding:"required"`
	End       string `json:"end_time" binding:"required"`
	TypeID    uint   `json:"type_id" binding:"required"`

	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Capacity       int    `json:"capacity" binding:"required"`
	SexRestriction string `json:"sex_restriction"`
}

func (h *ScheduleHandler) CreateClass(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid class payload")
		return
	}

	s, sess, err := h.createClass.Execute(c.Request.Context(), ucSchedule.CreateClassInput{
		CreatedBy:      adminID,
		TrainerID:      req.TrainerID,
		Date:           req.Date,
		Start:          req.Start,
		End:            req.End,
		TypeID:         req.TypeID,
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		Capacity:       req.Capacity,
		SexRestriction: req.SexRestriction,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"schedule": s,
		"session":  sess,
	})
}

// Cancel removes a schedule block together with its session and
// enrollments. Trainers may cancel their own blocks; admins any.
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid schedule id")
		return
	}

	s, err := h.repo.GetSchedule(c.Request.Context(), uint(scheduleID))
	if err != nil {
		httperr.NotFound(c, "schedule_not_found", "schedule not found")
		return
	}

	if role != models.RoleAdmin && s.TrainerID != userID {
		httperr.Forbidden(c, "not_owner", "not your schedule")
		return
	}

	if err := h.cancelSchedule.Execute(c.Request.Context(), userID, s.ID); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "cancelled"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type EquipmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEquipmentHandler(db *gorm.DB, audit *audit.Dispatcher) *EquipmentHandler {
	return &EquipmentHandler{db: db, audit: audit}
}

func (h *EquipmentHandler) List(c *gin.Context) {
	var equipment []models.Equipment
	if err := h.db.
		Preload("Room").
		Preload("Status").
		Order("id ASC").
		Find(&equipment).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list equipment")
		return
	}

	httpresp.List(c, equipment)
}

func (h *EquipmentHandler) ListStatuses(c *gin.Context) {
	var statuses []models.EquipmentStatus
	if err := h.db.Order("id ASC").Find(&statuses).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list statuses")
		return
	}

	httpresp.List(c, statuses)
}

type UpdateEquipmentStatusRequest struct {
	StatusID uint `json:"status_id" binding:"required"`
}

func (h *EquipmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid equipment id")
		return
	}

	var req UpdateEquipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid status payload")
		return
	}

	var equipment models.Equipment
	if err := h.db.First(&equipment, id).Error; err != nil {
		httperr.NotFound(c, "equipment_not_found", "equipment not found")
		return
	}

	var status models.EquipmentStatus
	if err := h.db.First(&status, req.StatusID).Error; err != nil {
		httperr.BadRequest(c, "invalid_status", "unknown equipment status")
		return
	}

	if err := h.db.Model(&equipment).Update("status_id", status.ID).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update equipment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "equipment_status_updated",
		Entity:   "equipment",
		EntityID: &equipment.ID,
		Metadata: map[string]any{"status": status.Label},
	})

	equipment.StatusID = status.ID
	equipment.Status = status
	c.JSON(http.StatusOK, equipment)
}

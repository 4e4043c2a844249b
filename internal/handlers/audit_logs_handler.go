package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the audit trail, newest first. Admin only.
// Optional filters: ?action=, ?entity=, ?user_id=, ?limit= (default 100).
func (h *AuditLogsHandler) List(c *gin.Context) {
	query := h.db.Model(&models.AuditLog{}).Order("created_at DESC")

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if rawUser := c.Query("user_id"); rawUser != "" {
		userID, err := strconv.ParseUint(rawUser, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_user_id", "user_id must be numeric")
			return
		}
		query = query.Where("user_id = ?", uint(userID))
	}

	limit := 100
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 || parsed > 500 {
			httperr.BadRequest(c, "invalid_limit", "limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	var logs []models.AuditLog
	if err := query.Limit(limit).Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list audit logs")
		return
	}

	httpresp.List(c, logs)
}

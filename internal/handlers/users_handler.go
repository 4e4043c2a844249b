package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
	"github.com/FitClubSystems/gym-manager/internal/validators"
)

// UsersHandler covers the admin side of account management:
// listing users by role and provisioning trainer/admin accounts.
type UsersHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUsersHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UsersHandler {
	return &UsersHandler{db: db, audit: dispatcher}
}

func (h *UsersHandler) List(c *gin.Context) {
	query := h.db.Model(&models.User{}).Order("last_name ASC, first_name ASC")

	if role := c.Query("role"); role != "" {
		if role != models.RoleMember && role != models.RoleTrainer && role != models.RoleAdmin {
			httperr.BadRequest(c, "invalid_role", "unknown role filter")
			return
		}
		query = query.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list users")
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userPayload(&users[i]))
	}
	httpresp.List(c, out)
}

// ListTrainers is the member-facing trainer directory used when
// booking availability.
func (h *UsersHandler) ListTrainers(c *gin.Context) {
	var trainers []models.User
	if err := h.db.
		Where("role = ?", models.RoleTrainer).
		Order("last_name ASC, first_name ASC").
		Find(&trainers).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list trainers")
		return
	}

	out := make([]gin.H, 0, len(trainers))
	for i := range trainers {
		out = append(out, gin.H{
			"id":         trainers[i].ID,
			"first_name": trainers[i].FirstName,
			"last_name":  trainers[i].LastName,
			"email":      trainers[i].Email,
		})
	}
	httpresp.List(c, out)
}

type CreateStaffRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
}

// CreateStaff provisions a trainer or admin account.
func (h *UsersHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Role != models.RoleTrainer && req.Role != models.RoleAdmin {
		httperr.BadRequest(c, "invalid_role", "role must be trainer or admin")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "email domain does not accept mail")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "email is already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to hash password")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         req.Role,
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create user")
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "staff_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role, "email": user.Email},
	})

	httpresp.Created(c, userPayload(&user))
}

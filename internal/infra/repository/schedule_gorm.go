package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTrainer(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleTrainer).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) GetScheduleType(
	ctx context.Context,
	id uint,
) (*models.ScheduleType, error) {

	var st models.ScheduleType
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// --------------------------------------------------
// Schedule (create / conflict)
// --------------------------------------------------

func (r *ScheduleGormRepository) HasTimeConflict(
	ctx context.Context,
	trainerID uint,
	date time.Time,
	w domain.Window,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where(
			"trainer_id = ? AND date = ? AND start_time < ? AND end_time > ?",
			trainerID,
			date,
			w.End,
			w.Start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) CreateScheduleIfFree(
	ctx context.Context,
	s *models.Schedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, s); err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

func (r *ScheduleGormRepository) CreateClassIfFree(
	ctx context.Context,
	s *models.Schedule,
	sess *models.Session,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, s); err != nil {
			return err
		}
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		sess.ScheduleID = s.ID
		return tx.Create(sess).Error
	})
}

// assertSlotFree locks the trainer's conflicting rows so a parallel
// writer cannot slip into the same window before this tx commits.
func assertSlotFree(tx *gorm.DB, s *models.Schedule) error {
	var conflicts []models.Schedule
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"trainer_id = ? AND date = ? AND start_time < ? AND end_time > ?",
			s.TrainerID, s.Date, s.EndTime, s.StartTime,
		).
		Find(&conflicts).Error; err != nil {
		return err
	}

	if len(conflicts) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

// --------------------------------------------------
// Schedule (cancel / list)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Type").
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) DeleteScheduleCascade(
	ctx context.Context,
	scheduleID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess models.Session
		err := tx.Where("schedule_id = ?", scheduleID).First(&sess).Error
		switch {
		case err == nil:
			if err := tx.
				Where("session_id = ?", sess.ID).
				Delete(&models.Enrollment{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&sess).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// availability block with no class attached
		default:
			return err
		}

		return tx.Delete(&models.Schedule{}, scheduleID).Error
	})
}

func (r *ScheduleGormRepository) ListForTrainer(
	ctx context.Context,
	trainerID uint,
	from time.Time,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Type").
		Where("trainer_id = ? AND date >= ?", trainerID, from).
		Order("date ASC, start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleGormRepository) GetSessionForSchedule(
	ctx context.Context,
	scheduleID uint,
) (*models.Session, error) {

	var sess models.Session
	if err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		First(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

// --------------------------------------------------
// Session (browse)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSession(
	ctx context.Context,
	id uint,
) (*models.Session, error) {

	var sess models.Session
	if err := r.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Schedule.Trainer").
		First(&sess, id).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *ScheduleGormRepository) ListUpcomingSessions(
	ctx context.Context,
	from time.Time,
) ([]domain.SessionListing, error) {

	var sessions []models.Session
	if err := r.db.WithContext(ctx).
		Joins("JOIN schedules ON schedules.id = sessions.schedule_id").
		Where("schedules.date >= ?", from).
		Order("schedules.date ASC, schedules.start_time ASC").
		Preload("Schedule").
		Preload("Schedule.Trainer").
		Preload("Schedule.Type").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	out := make([]domain.SessionListing, 0, len(sessions))
	for _, sess := range sessions {
		count, err := r.CountEnrollments(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SessionListing{
			Session:  sess,
			Enrolled: count,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Enrollment
// --------------------------------------------------

func (r *ScheduleGormRepository) Enroll(
	ctx context.Context,
	sessionID uint,
	memberID uint,
) (*models.Enrollment, error) {

	var created models.Enrollment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the session row so the capacity check and the insert
		// are one atomic unit even with concurrent enrollers.
		var sess models.Session
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sess, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("session_not_found")
			}
			return err
		}

		var dup int64
		if err := tx.
			Model(&models.Enrollment{}).
			Where("session_id = ? AND member_id = ?", sessionID, memberID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return httperr.ErrBusiness("already_enrolled")
		}

		var enrolled int64
		if err := tx.
			Model(&models.Enrollment{}).
			Where("session_id = ?", sessionID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled >= int64(sess.Size) {
			return httperr.ErrBusiness("session_full")
		}

		created = models.Enrollment{
			SessionID: sessionID,
			MemberID:  memberID,
			Attended:  false,
		}
		return tx.Create(&created).Error
	})

	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ScheduleGormRepository) GetEnrollment(
	ctx context.Context,
	id uint,
) (*models.Enrollment, error) {

	var e models.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("Session").
		Preload("Session.Schedule").
		First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ScheduleGormRepository) DeleteEnrollment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Enrollment{}, id).Error
}

func (r *ScheduleGormRepository) UpdateEnrollment(
	ctx context.Context,
	e *models.Enrollment,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ?", e.ID).
		Update("attended", e.Attended).Error
}

func (r *ScheduleGormRepository) CountEnrollments(
	ctx context.Context,
	sessionID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ScheduleGormRepository) ListMemberEnrollments(
	ctx context.Context,
	memberID uint,
	from time.Time,
) ([]models.Enrollment, error) {

	var enrollments []models.Enrollment
	if err := r.db.WithContext(ctx).
		Joins("JOIN sessions ON sessions.id = enrollments.session_id").
		Joins("JOIN schedules ON schedules.id = sessions.schedule_id").
		Where("enrollments.member_id = ? AND schedules.date >= ?", memberID, from).
		Order("schedules.date ASC, schedules.start_time ASC").
		Preload("Session").
		Preload("Session.Schedule").
		Preload("Session.Schedule.Trainer").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/schedule"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

func newSchedule(trainerID, typeID uint, daysAhead int, start, end string) *models.Schedule {
	return &models.Schedule{
		TrainerID: trainerID,
		Date:      testDate(daysAhead),
		StartTime: start,
		EndTime:   end,
		TypeID:    typeID,
	}
}

func TestCreateScheduleIfFree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	ptType := scheduleTypeID(t, db, "Personal Training")

	err := repo.CreateScheduleIfFree(ctx, newSchedule(trainer.ID, ptType, 1, "09:00", "10:00"))
	require.NoError(t, err)

	// overlapping window on the same date is rejected
	err = repo.CreateScheduleIfFree(ctx, newSchedule(trainer.ID, ptType, 1, "09:30", "10:30"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// back-to-back slot is fine
	err = repo.CreateScheduleIfFree(ctx, newSchedule(trainer.ID, ptType, 1, "10:00", "11:00"))
	require.NoError(t, err)

	// same window on another date is fine
	err = repo.CreateScheduleIfFree(ctx, newSchedule(trainer.ID, ptType, 2, "09:00", "10:00"))
	require.NoError(t, err)

	// another trainer is unaffected
	other := createTestUser(t, db, models.RoleTrainer)
	err = repo.CreateScheduleIfFree(ctx, newSchedule(other.ID, ptType, 1, "09:00", "10:00"))
	require.NoError(t, err)
}

func TestHasTimeConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	ptType := scheduleTypeID(t, db, "Personal Training")

	require.NoError(t, repo.CreateScheduleIfFree(ctx,
		newSchedule(trainer.ID, ptType, 1, "09:00", "10:00")))

	conflict, err := repo.HasTimeConflict(ctx, trainer.ID, testDate(1),
		domain.Window{Start: "09:30", End: "10:30"})
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = repo.HasTimeConflict(ctx, trainer.ID, testDate(1),
		domain.Window{Start: "10:00", End: "11:00"})
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestEnrollCapacityAndDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	groupType := scheduleTypeID(t, db, "Group Class")

	sched := newSchedule(trainer.ID, groupType, 1, "14:00", "15:00")
	sess := &models.Session{
		Size: 2,
		Name: "Spin Class",
	}
	require.NoError(t, repo.CreateClassIfFree(ctx, sched, sess))

	m1 := createTestUser(t, db, models.RoleMember)
	m2 := createTestUser(t, db, models.RoleMember)
	m3 := createTestUser(t, db, models.RoleMember)

	e, err := repo.Enroll(ctx, sess.ID, m1.ID)
	require.NoError(t, err)
	assert.False(t, e.Attended)

	// double enrollment is rejected, not counted twice
	_, err = repo.Enroll(ctx, sess.ID, m1.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "already_enrolled"))

	_, err = repo.Enroll(ctx, sess.ID, m2.ID)
	require.NoError(t, err)

	// session is at capacity now
	_, err = repo.Enroll(ctx, sess.ID, m3.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "session_full"))

	count, err := repo.CountEnrollments(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// cancelling frees the spot
	require.NoError(t, repo.DeleteEnrollment(ctx, e.ID))
	_, err = repo.Enroll(ctx, sess.ID, m3.ID)
	require.NoError(t, err)
}

func TestEnrollUnknownSession(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)

	member := createTestUser(t, db, models.RoleMember)

	_, err := repo.Enroll(context.Background(), 999999, member.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "session_not_found"))
}

func TestDeleteScheduleCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	member := createTestUser(t, db, models.RoleMember)
	groupType := scheduleTypeID(t, db, "Group Class")

	sched := newSchedule(trainer.ID, groupType, 1, "09:00", "10:00")
	sess := &models.Session{Size: 10, Name: "Yoga"}
	require.NoError(t, repo.CreateClassIfFree(ctx, sched, sess))

	_, err := repo.Enroll(ctx, sess.ID, member.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteScheduleCascade(ctx, sched.ID))

	var schedules, sessions, enrollments int64
	db.Model(&models.Schedule{}).Where("id = ?", sched.ID).Count(&schedules)
	db.Model(&models.Session{}).Where("id = ?", sess.ID).Count(&sessions)
	db.Model(&models.Enrollment{}).Where("session_id = ?", sess.ID).Count(&enrollments)
	assert.Zero(t, schedules)
	assert.Zero(t, sessions)
	assert.Zero(t, enrollments)

	// the freed window is bookable again
	require.NoError(t, repo.CreateScheduleIfFree(ctx,
		newSchedule(trainer.ID, groupType, 1, "09:00", "10:00")))
}

func TestDeleteScheduleCascadeWithoutSession(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	ptType := scheduleTypeID(t, db, "Personal Training")

	sched := newSchedule(trainer.ID, ptType, 1, "09:00", "10:00")
	require.NoError(t, repo.CreateScheduleIfFree(ctx, sched))

	require.NoError(t, repo.DeleteScheduleCascade(ctx, sched.ID))
}

func TestListUpcomingSessions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	member := createTestUser(t, db, models.RoleMember)
	groupType := scheduleTypeID(t, db, "Group Class")

	past := newSchedule(trainer.ID, groupType, -7, "09:00", "10:00")
	require.NoError(t, repo.CreateClassIfFree(ctx, past, &models.Session{Size: 10, Name: "Old Class"}))

	upcoming := newSchedule(trainer.ID, groupType, 3, "09:00", "10:00")
	sess := &models.Session{Size: 10, Name: "Boxing Basics"}
	require.NoError(t, repo.CreateClassIfFree(ctx, upcoming, sess))

	_, err := repo.Enroll(ctx, sess.ID, member.ID)
	require.NoError(t, err)

	listings, err := repo.ListUpcomingSessions(ctx, testDate(0))
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Boxing Basics", listings[0].Session.Name)
	assert.Equal(t, int64(1), listings[0].Enrolled)
	assert.Equal(t, trainer.ID, listings[0].Session.Schedule.TrainerID)
}

func TestUpdateEnrollmentAttendance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	member := createTestUser(t, db, models.RoleMember)
	groupType := scheduleTypeID(t, db, "Group Class")

	sched := newSchedule(trainer.ID, groupType, 1, "09:00", "10:00")
	sess := &models.Session{Size: 5, Name: "Pilates"}
	require.NoError(t, repo.CreateClassIfFree(ctx, sched, sess))

	e, err := repo.Enroll(ctx, sess.ID, member.ID)
	require.NoError(t, err)

	e.Attended = true
	require.NoError(t, repo.UpdateEnrollment(ctx, e))

	got, err := repo.GetEnrollment(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.Attended)
}

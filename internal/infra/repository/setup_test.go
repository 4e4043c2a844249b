package repository

import (
	"fmt"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbpkg "github.com/FitClubSystems/gym-manager/internal/db"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// setupTestDB connects against TEST_DATABASE_URL, migrates the schema
// and wipes every table so each test starts clean. Tests are skipped
// when no database is configured.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	for _, table := range []string{
		"audit_logs", "items", "bills", "goals", "metrics",
		"enrollments", "sessions", "schedules", "equipment",
		"users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	if err := dbpkg.EnsureLookups(db); err != nil {
		t.Fatalf("failed to seed lookups: %v", err)
	}

	return db
}

var testUserSeq int

func createTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	testUserSeq++
	user := models.User{
		Email:        fmt.Sprintf("%s%d@test.local", role, testUserSeq),
		PasswordHash: string(hashed),
		FirstName:    "Test",
		LastName:     role,
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func scheduleTypeID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	var st models.ScheduleType
	if err := db.Where("type = ?", name).First(&st).Error; err != nil {
		t.Fatalf("schedule type %q: %v", name, err)
	}
	return st.ID
}

func metricTypeID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	var mt models.MetricType
	if err := db.Where("name = ?", name).First(&mt).Error; err != nil {
		t.Fatalf("metric type %q: %v", name, err)
	}
	return mt.ID
}

func testDate(daysAhead int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, daysAhead)
}

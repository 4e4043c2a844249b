package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/config"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := EnsureLookups(db); err != nil {
		log.Fatalf("failed to seed lookup tables: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ScheduleType{},
		&models.Schedule{},
		&models.Session{},
		&models.Enrollment{},
		&models.MetricType{},
		&models.Metric{},
		&models.Goal{},
		&models.Service{},
		&models.Bill{},
		&models.Item{},
		&models.Room{},
		&models.EquipmentStatus{},
		&models.Equipment{},
		&models.AuditLog{},
	)
}

// EnsureLookups inserts the lookup rows the application depends on.
// Idempotent: existing rows are left alone.
func EnsureLookups(db *gorm.DB) error {
	for _, t := range []string{"Group Class", "Personal Training", "Consultation"} {
		st := models.ScheduleType{Type: t}
		if err := db.Where("type = ?", t).FirstOrCreate(&st).Error; err != nil {
			return err
		}
	}

	for _, s := range []string{"Available", "In Use", "Maintenance", "Out of Service"} {
		es := models.EquipmentStatus{Label: s}
		if err := db.Where("label = ?", s).FirstOrCreate(&es).Error; err != nil {
			return err
		}
	}

	metricTypes := []models.MetricType{
		{Name: "Weight", Description: "Body weight in pounds"},
		{Name: "Body Fat %", Description: "Body fat percentage"},
		{Name: "BMI", Description: "Body Mass Index"},
		{Name: "Heart Rate", Description: "Resting heart rate (bpm)"},
		{Name: "Height", Description: "Height in inches"},
	}
	for _, mt := range metricTypes {
		row := mt
		if err := db.Where("name = ?", mt.Name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

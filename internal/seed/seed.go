package seed

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/models"
)

// Demo populates a fresh database with a small, recognizable data set:
// three accounts, services, rooms, equipment and one booked day for the
// demo trainer. Idempotent: it does nothing when the admin account
// already exists.
func Demo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", "lebron.james@fitclub.com").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("demo data already present, skipping seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin, err := demoUser(tx, "lebron.james@fitclub.com", "admin123",
			"LeBron", "James", "1984-12-30", "M", "555-2323", models.RoleAdmin)
		if err != nil {
			return err
		}
		trainer, err := demoUser(tx, "t1@fitclub.com", "trainer123",
			"Bronny", "James", "1990-05-12", "M", "555-0201", models.RoleTrainer)
		if err != nil {
			return err
		}
		member, err := demoUser(tx, "steph.curry@fitclub.com", "member123",
			"Stephen", "Curry", "1988-03-14", "M", "555-3030", models.RoleMember)
		if err != nil {
			return err
		}

		services := []models.Service{
			{Name: "Monthly Membership", Price: 49.99},
			{Name: "Annual Membership", Price: 499.99},
			{Name: "Personal Training Session (60 min)", Price: 75.00},
			{Name: "Personal Training Package (10 sessions)", Price: 650.00},
			{Name: "Group Fitness Class Drop-In", Price: 15.00},
			{Name: "Group Fitness Class Package (10 classes)", Price: 120.00},
			{Name: "Nutritional Consultation", Price: 100.00},
			{Name: "Fitness Assessment", Price: 50.00},
			{Name: "Guest Pass (Single Day)", Price: 20.00},
			{Name: "Locker Rental (Monthly)", Price: 10.00},
		}
		if err := tx.Create(&services).Error; err != nil {
			return err
		}

		rooms := []models.Room{
			{Name: "Yoga Studio A", Capacity: 20},
			{Name: "Spin Room", Capacity: 25},
			{Name: "Weight Training Floor", Capacity: 50},
			{Name: "Cardio Zone", Capacity: 40},
			{Name: "Group Fitness Studio B", Capacity: 30},
			{Name: "Personal Training Room 1", Capacity: 2},
			{Name: "Personal Training Room 2", Capacity: 2},
			{Name: "Boxing Studio", Capacity: 15},
			{Name: "Pilates Studio", Capacity: 12},
			{Name: "Multi-Purpose Room", Capacity: 35},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}
		roomByName := make(map[string]uint, len(rooms))
		for _, r := range rooms {
			roomByName[r.Name] = r.ID
		}

		var available, inUse models.EquipmentStatus
		if err := tx.Where("label = ?", "Available").First(&available).Error; err != nil {
			return err
		}
		if err := tx.Where("label = ?", "In Use").First(&inUse).Error; err != nil {
			return err
		}

		equipment := []models.Equipment{
			demoEquipment("Yoga Mat Set (20 mats)", roomByName["Yoga Studio A"], available.ID),
			demoEquipment("Yoga Block Set", roomByName["Yoga Studio A"], available.ID),
			demoEquipment("Resistance Band Set", roomByName["Yoga Studio A"], available.ID),
			demoEquipment("Spin Bike 1", roomByName["Spin Room"], available.ID),
			demoEquipment("Spin Bike 2", roomByName["Spin Room"], available.ID),
			demoEquipment("Bench Press Station 1", roomByName["Weight Training Floor"], available.ID),
			demoEquipment("Bench Press Station 2", roomByName["Weight Training Floor"], available.ID),
			demoEquipment("Squat Rack 1", roomByName["Weight Training Floor"], available.ID),
			demoEquipment("Squat Rack 2", roomByName["Weight Training Floor"], inUse.ID),
			demoEquipment("Treadmill 1", roomByName["Cardio Zone"], available.ID),
			demoEquipment("Treadmill 2", roomByName["Cardio Zone"], available.ID),
			demoEquipment("Heavy Bag 1", roomByName["Boxing Studio"], available.ID),
			demoEquipment("Speed Bag", roomByName["Boxing Studio"], available.ID),
			demoEquipment("Boxing Gloves Set", roomByName["Boxing Studio"], available.ID),
			demoEquipment("Reformer 1", roomByName["Pilates Studio"], available.ID),
			demoEquipment("Pilates Ball Set", roomByName["Pilates Studio"], available.ID),
			demoEquipment("Foam Roller Set", roomByName["Pilates Studio"], available.ID),
		}
		if err := tx.Create(&equipment).Error; err != nil {
			return err
		}

		var ptType, groupType models.ScheduleType
		if err := tx.Where("type = ?", "Personal Training").First(&ptType).Error; err != nil {
			return err
		}
		if err := tx.Where("type = ?", "Group Class").First(&groupType).Error; err != nil {
			return err
		}

		demoDay := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7)

		schedPT := models.Schedule{
			TrainerID: trainer.ID,
			Date:      demoDay,
			StartTime: "09:00",
			EndTime:   "10:00",
			TypeID:    ptType.ID,
		}
		schedGroup := models.Schedule{
			TrainerID: trainer.ID,
			Date:      demoDay,
			StartTime: "14:00",
			EndTime:   "15:00",
			TypeID:    groupType.ID,
		}
		if err := tx.Create(&schedPT).Error; err != nil {
			return err
		}
		if err := tx.Create(&schedGroup).Error; err != nil {
			return err
		}

		sessPT := models.Session{
			ScheduleID:     schedPT.ID,
			Size:           1,
			Name:           "Personal Training",
			Description:    "One-on-one strength training session",
			Location:       "Personal Training Room 1",
			SexRestriction: "A",
		}
		sessGroup := models.Session{
			ScheduleID:     schedGroup.ID,
			Size:           20,
			Name:           "Basketball Skills Training",
			Description:    "Improve your basketball fundamentals",
			Location:       "Multi-Purpose Room",
			SexRestriction: "A",
		}
		if err := tx.Create(&sessPT).Error; err != nil {
			return err
		}
		if err := tx.Create(&sessGroup).Error; err != nil {
			return err
		}

		enrollments := []models.Enrollment{
			{SessionID: sessPT.ID, MemberID: member.ID},
			{SessionID: sessGroup.ID, MemberID: member.ID},
		}
		if err := tx.Create(&enrollments).Error; err != nil {
			return err
		}

		bill := models.Bill{
			Reference: uuid.NewString(),
			AdminID:   admin.ID,
			MemberID:  member.ID,
			Date:      demoDay.AddDate(0, 0, -10),
			Paid:      false,
		}
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}
		items := []models.Item{
			{BillID: bill.ID, ServiceID: services[0].ID, Quantity: 1},
			{BillID: bill.ID, ServiceID: services[2].ID, Quantity: 2},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		var typeByName = make(map[string]uint)
		var metricTypes []models.MetricType
		if err := tx.Find(&metricTypes).Error; err != nil {
			return err
		}
		for _, mt := range metricTypes {
			typeByName[mt.Name] = mt.ID
		}

		loggedAt := demoDay.AddDate(0, 0, -17)
		metrics := []models.Metric{
			{UserID: member.ID, MetricTypeID: typeByName["Height"], Value: 75, LoggedDate: loggedAt},
			{UserID: member.ID, MetricTypeID: typeByName["Weight"], Value: 185, LoggedDate: loggedAt},
			{UserID: member.ID, MetricTypeID: typeByName["Body Fat %"], Value: 12.5, LoggedDate: loggedAt},
			{UserID: member.ID, MetricTypeID: typeByName["Heart Rate"], Value: 58, LoggedDate: loggedAt},
		}
		if err := tx.Create(&metrics).Error; err != nil {
			return err
		}

		log.Println("demo data seeded")
		return nil
	})
}

func demoUser(
	tx *gorm.DB,
	email, password, first, last, dob, sex, phone, role string,
) (*models.User, error) {

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    first,
		LastName:     last,
		DateOfBirth:  &born,
		Sex:          sex,
		Phone:        phone,
		Role:         role,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func demoEquipment(name string, roomID, statusID uint) models.Equipment {
	return models.Equipment{Name: name, RoomID: &roomID, StatusID: statusID}
}

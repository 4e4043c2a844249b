package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/FitClubSystems/gym-manager/internal/domain/billing"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type BillingGormRepository struct {
	db *gorm.DB
}

func NewBillingGormRepository(db *gorm.DB) *BillingGormRepository {
	return &BillingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BillingGormRepository) GetMember(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleMember).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BillingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BillingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Bills
// --------------------------------------------------

func (r *BillingGormRepository) CreateBillWithItems(
	ctx context.Context,
	bill *models.Bill,
	items []models.Item,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(bill).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].BillID = bill.ID
			if err := tx.Omit(clause.Associations).Create(&items[i]).Error; err != nil {
				return err
			}
		}

		bill.Items = items
		return nil
	})
}

func (r *BillingGormRepository) GetBill(
	ctx context.Context,
	id uint,
) (*models.Bill, error) {

	var bill models.Bill
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Service").
		First(&bill, id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *BillingGormRepository) AddItem(
	ctx context.Context,
	item *models.Item,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(item).Error
}

func (r *BillingGormRepository) UpdateBill(
	ctx context.Context,
	bill *models.Bill,
) error {
	// Column-level update: the bill may carry preloaded items and Save
	// would try to write those associations too.
	return r.db.WithContext(ctx).
		Model(&models.Bill{}).
		Where("id = ?", bill.ID).
		Update("paid", bill.Paid).Error
}

func (r *BillingGormRepository) ListUnpaid(
	ctx context.Context,
) ([]models.Bill, error) {

	var bills []models.Bill
	if err := r.db.WithContext(ctx).
		Where("paid = ?", false).
		Preload("Items").
		Preload("Items.Service").
		Preload("Member").
		Order("date ASC, id ASC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *BillingGormRepository) ListForMember(
	ctx context.Context,
	memberID uint,
) ([]models.Bill, error) {

	var bills []models.Bill
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Preload("Items").
		Preload("Items.Service").
		Order("date DESC, id DESC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// Compile-time check
var _ domain.Repository = (*BillingGormRepository)(nil)

package billing

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetMember(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Bills --------
	CreateBillWithItems(
		ctx context.Context,
		bill *models.Bill,
		items []models.Item,
	) error

	GetBill(
		ctx context.Context,
		id uint,
	) (*models.Bill, error)

	AddItem(
		ctx context.Context,
		item *models.Item,
	) error

	UpdateBill(
		ctx context.Context,
		bill *models.Bill,
	) error

	ListUnpaid(
		ctx context.Context,
	) ([]models.Bill, error)

	ListForMember(
		ctx context.Context,
		memberID uint,
	) ([]models.Bill, error)
}

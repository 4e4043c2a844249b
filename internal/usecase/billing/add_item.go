package billing

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/billing"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type AddItem struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddItem(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddItem {
	return &AddItem{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddItem) Execute(
	ctx context.Context,
	adminID uint,
	billID uint,
	serviceID uint,
	quantity int,
) (*models.Item, error) {

	bill, err := uc.repo.GetBill(ctx, billID)
	if err != nil {
		return nil, httperr.ErrBusiness("bill_not_found")
	}

	// Paid bills are closed ledger entries.
	if domain.StatusOf(bill) == domain.StatusPaid {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if quantity <= 0 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	item := &models.Item{
		BillID:    bill.ID,
		ServiceID: svc.ID,
		Service:   *svc,
		Quantity:  quantity,
	}

	if err := uc.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "bill_item_added",
		Entity:   "bill",
		EntityID: &bill.ID,
	})

	return item, nil
}

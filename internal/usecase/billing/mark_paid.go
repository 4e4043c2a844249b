package billing

import (
	"context"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/billing"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

type MarkPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkPaid) Execute(
	ctx context.Context,
	adminID uint,
	billID uint,
) (*models.Bill, error) {

	bill, err := uc.repo.GetBill(ctx, billID)
	if err != nil {
		return nil, httperr.ErrBusiness("bill_not_found")
	}

	if err := domain.CanMarkPaid(domain.StatusOf(bill)); err != nil {
		return nil, err
	}

	bill.Paid = true
	if err := uc.repo.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "bill_paid",
		Entity:   "bill",
		EntityID: &bill.ID,
	})

	return bill, nil
}

package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	domain "github.com/FitClubSystems/gym-manager/internal/domain/billing"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BillItemInput struct {
	ServiceID uint
	Quantity  int
}

type CreateBillInput struct {
	AdminID  uint
	MemberID uint
	Date     string
	Items    []BillItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateBill struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBill(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBill {
	return &CreateBill{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates the bill and all its items as one unit; a bad service
// id or quantity leaves nothing behind.
func (uc *CreateBill) Execute(
	ctx context.Context,
	in CreateBillInput,
) (*models.Bill, error) {

	member, err := uc.repo.GetMember(ctx, in.MemberID)
	if err != nil {
		return nil, httperr.ErrBusiness("member_not_found")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	items := make([]models.Item, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
		svc, err := uc.repo.GetService(ctx, it.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		items = append(items, models.Item{
			ServiceID: svc.ID,
			Service:   *svc,
			Quantity:  it.Quantity,
		})
	}

	bill := &models.Bill{
		Reference: uuid.NewString(),
		AdminID:   in.AdminID,
		MemberID:  member.ID,
		Date:      date,
		Paid:      false,
	}

	if err := uc.repo.CreateBillWithItems(ctx, bill, items); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "bill_created",
		Entity:   "bill",
		EntityID: &bill.ID,
		Metadata: map[string]any{"total": domain.Total(bill.Items)},
	})

	return bill, nil
}

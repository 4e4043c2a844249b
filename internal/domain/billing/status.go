package billing

import (
	"math"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

// ===============================
// Bill Status
// ===============================

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

func StatusOf(b *models.Bill) Status {
	if b.Paid {
		return StatusPaid
	}
	return StatusUnpaid
}

// CanMarkPaid allows the single unpaid -> paid transition. Paying an
// already-paid bill is rejected.
func CanMarkPaid(current Status) error {
	if current != StatusUnpaid {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Totals
// ===============================

// Total sums price x quantity over the bill's items, rounded to cents.
func Total(items []models.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Service.Price * float64(it.Quantity)
	}
	return math.Round(sum*100) / 100
}

package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusUnpaid, StatusOf(&models.Bill{Paid: false}))
	assert.Equal(t, StatusPaid, StatusOf(&models.Bill{Paid: true}))
}

func TestCanMarkPaid(t *testing.T) {
	assert.NoError(t, CanMarkPaid(StatusUnpaid))

	err := CanMarkPaid(StatusPaid)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTotal(t *testing.T) {
	items := []models.Item{
		{Service: models.Service{Price: 49.99}, Quantity: 1},
		{Service: models.Service{Price: 75.00}, Quantity: 2},
	}
	assert.Equal(t, 199.99, Total(items))
}

func TestTotalEmptyBill(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
}

func TestTotalRoundsToCents(t *testing.T) {
	items := []models.Item{
		{Service: models.Service{Price: 0.10}, Quantity: 3},
	}
	assert.Equal(t, 0.30, Total(items))
}

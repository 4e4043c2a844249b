package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainBilling "github.com/FitClubSystems/gym-manager/internal/domain/billing"
	"github.com/FitClubSystems/gym-manager/internal/models"
)

func TestCreateBillWithItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingGormRepository(db)
	ctx := context.Background()

	admin := createTestUser(t, db, models.RoleAdmin)
	member := createTestUser(t, db, models.RoleMember)

	membership := models.Service{Name: "Monthly Membership", Price: 49.99}
	ptSession := models.Service{Name: "Personal Training Session (60 min)", Price: 75.00}
	require.NoError(t, db.Create(&membership).Error)
	require.NoError(t, db.Create(&ptSession).Error)

	bill := &models.Bill{
		Reference: uuid.NewString(),
		AdminID:   admin.ID,
		MemberID:  member.ID,
		Date:      testDate(0),
	}
	items := []models.Item{
		{ServiceID: membership.ID, Quantity: 1},
		{ServiceID: ptSession.ID, Quantity: 2},
	}
	require.NoError(t, repo.CreateBillWithItems(ctx, bill, items))

	got, err := repo.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.False(t, got.Paid)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 199.99, domainBilling.Total(got.Items))
}

func TestMarkBillPaid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingGormRepository(db)
	ctx := context.Background()

	admin := createTestUser(t, db, models.RoleAdmin)
	member := createTestUser(t, db, models.RoleMember)

	bill := &models.Bill{
		Reference: uuid.NewString(),
		AdminID:   admin.ID,
		MemberID:  member.ID,
		Date:      testDate(0),
	}
	require.NoError(t, repo.CreateBillWithItems(ctx, bill, nil))

	unpaid, err := repo.ListUnpaid(ctx)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)

	bill.Paid = true
	require.NoError(t, repo.UpdateBill(ctx, bill))

	unpaid, err = repo.ListUnpaid(ctx)
	require.NoError(t, err)
	assert.Empty(t, unpaid)

	got, err := repo.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
}

func TestListForMember(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingGormRepository(db)
	ctx := context.Background()

	admin := createTestUser(t, db, models.RoleAdmin)
	m1 := createTestUser(t, db, models.RoleMember)
	m2 := createTestUser(t, db, models.RoleMember)

	for _, memberID := range []uint{m1.ID, m1.ID, m2.ID} {
		bill := &models.Bill{
			Reference: uuid.NewString(),
			AdminID:   admin.ID,
			MemberID:  memberID,
			Date:      testDate(0),
		}
		require.NoError(t, repo.CreateBillWithItems(ctx, bill, nil))
	}

	bills, err := repo.ListForMember(ctx, m1.ID)
	require.NoError(t, err)
	assert.Len(t, bills, 2)
}

func TestGetMemberRejectsOtherRoles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingGormRepository(db)
	ctx := context.Background()

	trainer := createTestUser(t, db, models.RoleTrainer)
	member := createTestUser(t, db, models.RoleMember)

	got, err := repo.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)

	_, err = repo.GetMember(ctx, trainer.ID)
	assert.Error(t, err)
}

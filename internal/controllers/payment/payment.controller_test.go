package paymentController

import (
	"context"
	"testing"
	"time"

	"claimdesk/internal/database"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestController(t *testing.T) (*PaymentController, database.DB) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(&Payment{}))

	db := database.DB{SQL: gormDB}

	controller := New(
		repositories.NewPayment(db),
		services.NewCacheInvalidationService(db),
	)

	return controller, db
}

func createTestPayment(t *testing.T, db database.DB, status PaymentStatus) *Payment {
	t.Helper()

	payment := &Payment{
		ClaimID:       "claim-1",
		PaymentDate:   time.Now().Add(7 * 24 * time.Hour),
		PaymentAmount: 63000,
		PaymentType:   "insurance",
		Status:        status,
	}
	require.NoError(t, db.SQL.Create(payment).Error)
	return payment
}

func TestConfirm(t *testing.T) {
	controller, db := newTestController(t)
	payment := createTestPayment(t, db, PaymentPending)

	confirmed, err := controller.Confirm(context.Background(), payment.ID)
	require.NoError(t, err)

	assert.Equal(t, PaymentCompleted, confirmed.Status)

	var persisted Payment
	require.NoError(t, db.SQL.First(&persisted, "id = ?", payment.ID).Error)
	assert.Equal(t, PaymentCompleted, persisted.Status)
}

func TestConfirm_NotFound(t *testing.T) {
	controller, _ := newTestController(t)

	_, err := controller.Confirm(context.Background(), "missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPayments_FilterByStatus(t *testing.T) {
	controller, db := newTestController(t)
	createTestPayment(t, db, PaymentPending)
	createTestPayment(t, db, PaymentCompleted)
	ctx := context.Background()

	pending, err := controller.ListPayments(ctx, PaymentPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := controller.ListPayments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

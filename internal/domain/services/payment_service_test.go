package services

import (
	"testing"
	"time"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService(t *testing.T) *PaymentService {
	t.Helper()
	return NewPaymentService(newTestDB(t), testConfig()).(*PaymentService)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := newPaymentService(t)

	err := svc.RecordPayment(&models.Payment{
		HouseNumber:   "A1",
		AmountPaid:    decimal.NewFromInt(-100),
		PaymentMethod: models.PaymentCash,
	})
	assert.Error(t, err)

	err = svc.RecordPayment(&models.Payment{
		HouseNumber:   "A1",
		AmountPaid:    decimal.NewFromInt(100),
		PaymentMethod: "Barter",
	})
	assert.Error(t, err)

	err = svc.RecordPayment(&models.Payment{
		AmountPaid:    decimal.NewFromInt(100),
		PaymentMethod: models.PaymentCash,
	})
	assert.Error(t, err)
}

func TestRecordPaymentDefaultsDate(t *testing.T) {
	svc := newPaymentService(t)

	payment := &models.Payment{
		HouseNumber:   "A1",
		AmountPaid:    decimal.NewFromInt(25000),
		PaymentMethod: models.PaymentMPesa,
	}
	require.NoError(t, svc.RecordPayment(payment))
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestLatestPaymentTieBreaksOnID(t *testing.T) {
	svc := newPaymentService(t)

	sameDay := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	seedPayment(t, svc.DB, "A1", 10000, sameDay)
	second := seedPayment(t, svc.DB, "A1", 15000, sameDay)

	latest, err := svc.LatestPayment("A1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
}

func TestLatestPaymentNoneIsNil(t *testing.T) {
	svc := newPaymentService(t)

	latest, err := svc.LatestPayment("A1")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestMonthlyRevenueRange(t *testing.T) {
	svc := newPaymentService(t)

	seedPayment(t, svc.DB, "A1", 25000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	seedPayment(t, svc.DB, "B2", 30000, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	seedPayment(t, svc.DB, "C3", 18000, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	payments, err := svc.MonthlyRevenue(monthDate(2025, 1))
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestListVacantOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db, testConfig()).(*OccupancyService)

	seedUnit(t, db, "C3", 12000, models.OccupancyUnoccupied)
	seedUnit(t, db, "A1", 25000, models.OccupancyUnoccupied)
	seedUnit(t, db, "B2", 30000, models.OccupancyOccupied)

	units, err := svc.ListVacant()
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "A1", units[0].HouseNumber)
	assert.Equal(t, "C3", units[1].HouseNumber)
}

func TestSetOccupancyUnknownUnit(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db, testConfig()).(*OccupancyService)

	assert.Error(t, svc.SetOccupancy("Z9", models.OccupancyOccupied))
	assert.Error(t, svc.SetOccupancy("Z9", "Condemned"))
}

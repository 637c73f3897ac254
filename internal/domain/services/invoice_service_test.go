package services

import (
	"testing"
	"time"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceService(t *testing.T) *InvoiceService {
	t.Helper()
	return NewInvoiceService(newTestDB(t), testConfig()).(*InvoiceService)
}

func TestGenerateSingleSumsUtilities(t *testing.T) {
	svc := newInvoiceService(t)

	invoice, err := svc.GenerateSingle(SingleInvoiceInput{
		TenantName:   "Jane Wanjiku",
		HouseNumber:  "A1",
		RentAmount:   decimal.NewFromInt(25000),
		Electricity:  decimal.NewFromInt(1200),
		Water:        decimal.NewFromInt(500),
		Garbage:      decimal.NewFromInt(300),
		BillingMonth: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, invoice.AmountDue.Equal(decimal.NewFromInt(27000)), "got %s", invoice.AmountDue)
	assert.Equal(t, models.InvoiceUnpaid, invoice.PaymentStatus)
	// Billing month normalizes to the first of the month
	assert.Equal(t, monthDate(2025, 1), invoice.BillingMonth)
	assert.Regexp(t, `^INV-[0-9A-F]{8}$`, invoice.InvoiceLabel)
}

func TestGenerateSingleRejectsDuplicate(t *testing.T) {
	svc := newInvoiceService(t)

	input := SingleInvoiceInput{
		HouseNumber:  "A1",
		RentAmount:   decimal.NewFromInt(25000),
		BillingMonth: monthDate(2025, 1),
	}
	_, err := svc.GenerateSingle(input)
	require.NoError(t, err)

	// Any day within the same month collides
	input.BillingMonth = time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	_, err = svc.GenerateSingle(input)
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
}

func TestGenerateBulkSkipsUnboundTenants(t *testing.T) {
	svc := newInvoiceService(t)

	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyOccupied)
	seedUnit(t, svc.DB, "B2", 30000, models.OccupancyOccupied)
	seedTenant(t, svc.DB, "Jane Wanjiku", "A1")
	seedTenant(t, svc.DB, "Peter Kamau", "B2")
	seedTenant(t, svc.DB, "Waiting List", "") // not bound to a unit

	result, err := svc.GenerateBulk(monthDate(2025, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Skipped)

	var count int64
	require.NoError(t, svc.DB.Model(&models.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGenerateBulkUsesLiveRent(t *testing.T) {
	svc := newInvoiceService(t)

	seedUnit(t, svc.DB, "A1", 28000, models.OccupancyOccupied)
	seedTenant(t, svc.DB, "Jane Wanjiku", "A1")

	_, err := svc.GenerateBulk(monthDate(2025, 1))
	require.NoError(t, err)

	var invoice models.Invoice
	require.NoError(t, svc.DB.Where("house_number = ?", "A1").First(&invoice).Error)
	assert.True(t, invoice.RentAmount.Equal(decimal.NewFromInt(28000)))
	assert.True(t, invoice.AmountDue.Equal(decimal.NewFromInt(28000)))
}

func TestGenerateBulkReRunConverges(t *testing.T) {
	svc := newInvoiceService(t)

	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyOccupied)
	seedTenant(t, svc.DB, "Jane Wanjiku", "A1")

	first, err := svc.GenerateBulk(monthDate(2025, 1))
	require.NoError(t, err)
	require.Equal(t, 1, first.Created)

	second, err := svc.GenerateBulk(monthDate(2025, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, []string{"A1"}, second.Skipped)
}

func TestGenerateBulkEmptyBatchIsNoOp(t *testing.T) {
	svc := newInvoiceService(t)

	seedTenant(t, svc.DB, "Waiting List", "")

	result, err := svc.GenerateBulk(monthDate(2025, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)

	var count int64
	require.NoError(t, svc.DB.Model(&models.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMarkPaidZeroesAmountDue(t *testing.T) {
	svc := newInvoiceService(t)

	invoice := seedInvoice(t, svc.DB, "A1", monthDate(2025, 1), 25000)

	updated, err := svc.MarkPaid(invoice.ID)
	require.NoError(t, err)

	assert.Equal(t, models.InvoicePaid, updated.PaymentStatus)
	assert.True(t, updated.AmountDue.IsZero(), "got %s", updated.AmountDue)
}

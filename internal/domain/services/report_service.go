package services

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixed export filenames
const (
	FileMonthlyRevenue    = "monthly_revenue.csv"
	FileTenantStatements  = "tenant_statements.csv"
	FileMaintenanceCosts  = "maintenance_costs.csv"
	FileOccupancyAnalysis = "occupancy_analysis.csv"
)

// DashboardStats is the landlord dashboard snapshot
type DashboardStats struct {
	TotalUnits         int             `json:"total_units"`
	OccupiedUnits      int             `json:"occupied_units"`
	VacantUnits        int             `json:"vacant_units"`
	TotalTenants       int64           `json:"total_tenants"`
	MonthlyRevenue     decimal.Decimal `json:"monthly_revenue"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	OutstandingTotal   decimal.Decimal `json:"outstanding_total"`
	PendingMaintenance int64           `json:"pending_maintenance"`
	OverdueInvoices    int64           `json:"overdue_invoices"`
	OccupancyRate      int             `json:"occupancy_rate"`
}

// ActivityItem is one entry in the recent-activity feed
type ActivityItem struct {
	Type        string    `json:"type"` // payment, maintenance
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Export is one materialized CSV file
type Export struct {
	Filename string
	Data     []byte
}

// InterfaceReportService defines the report/export aggregator interface
type InterfaceReportService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetRecentActivity(limit int) ([]ActivityItem, error)
	ExportMonthlyRevenue() (*Export, error)
	ExportTenantStatements() (*Export, error)
	ExportMaintenanceCosts() (*Export, error)
	ExportOccupancyAnalysis() (*Export, error)
}

// ReportService is a read-only consumer of the store: it derives dashboard
// figures and CSV exports and never writes. Two invocations against the
// same store state produce byte-identical exports.
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config

	now func() time.Time
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
		now:    time.Now,
	}
}

// OccupancyRate computes occupied/total as a percentage rounded to the
// nearest integer. Zero units yields zero, not a division error.
func OccupancyRate(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

// marshalCSV materializes rows per the export contract: the first line is
// the comma-joined headers, then each field JSON-stringified and
// comma-joined. Decimals are written as bare numbers. encoding/csv is not
// used on purpose: it would re-quote fields and break the format.
func marshalCSV(headers []string, rows [][]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	for i, h := range headers {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(h)
	}
	buf.WriteByte('\n')

	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			switch v := field.(type) {
			case decimal.Decimal:
				buf.WriteString(v.String())
			default:
				encoded, err := json.Marshal(v)
				if err != nil {
					return nil, err
				}
				buf.Write(encoded)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// 1. GetDashboardStats assembles the dashboard snapshot
func (s *ReportService) GetDashboardStats() (*DashboardStats, error) {
	var units []models.Unit
	if err := s.DB.Find(&units).Error; err != nil {
		return nil, err
	}
	occupied := 0
	for _, u := range units {
		if u.OccupancyStatus == models.OccupancyOccupied {
			occupied++
		}
	}

	var totalTenants int64
	if err := s.DB.Model(&models.Tenant{}).Count(&totalTenants).Error; err != nil {
		return nil, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var payments []models.Payment
	if err := s.DB.Find(&payments).Error; err != nil {
		return nil, err
	}
	monthlyRevenue := decimal.Zero
	totalRevenue := decimal.Zero
	for _, p := range payments {
		totalRevenue = totalRevenue.Add(p.AmountPaid)
		if !p.PaymentDate.Before(monthStart) && p.PaymentDate.Before(nextMonth) {
			monthlyRevenue = monthlyRevenue.Add(p.AmountPaid)
		}
	}

	var invoices []models.Invoice
	if err := s.DB.Find(&invoices).Error; err != nil {
		return nil, err
	}
	outstanding := decimal.Zero
	var overdue int64
	for _, inv := range invoices {
		outstanding = outstanding.Add(inv.AmountDue)
		if inv.BillingMonth.Before(monthStart) && inv.AmountDue.IsPositive() {
			overdue++
		}
	}

	var pendingMaintenance int64
	if err := s.DB.Model(&models.Maintenance{}).
		Where("status = ?", models.MaintenancePending).
		Count(&pendingMaintenance).Error; err != nil {
		return nil, err
	}

	vacant := len(units) - occupied
	if vacant < 0 {
		vacant = 0
	}

	return &DashboardStats{
		TotalUnits:         len(units),
		OccupiedUnits:      occupied,
		VacantUnits:        vacant,
		TotalTenants:       totalTenants,
		MonthlyRevenue:     monthlyRevenue,
		TotalRevenue:       totalRevenue,
		OutstandingTotal:   outstanding,
		PendingMaintenance: pendingMaintenance,
		OverdueInvoices:    overdue,
		OccupancyRate:      OccupancyRate(occupied, len(units)),
	}, nil
}

// 2. GetRecentActivity merges the latest payments and maintenance updates
func (s *ReportService) GetRecentActivity(limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = 6
	}

	var payments []models.Payment
	if err := s.DB.Order("payment_date desc, id desc").Limit(limit).Find(&payments).Error; err != nil {
		return nil, err
	}
	var maintenance []models.Maintenance
	if err := s.DB.Order("date_of_maintenance desc, id desc").Limit(limit).Find(&maintenance).Error; err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(payments)+len(maintenance))
	for _, p := range payments {
		items = append(items, ActivityItem{
			Type:        "payment",
			Title:       "Payment received",
			Description: p.HouseNumber + " - KSh " + p.AmountPaid.String(),
			Timestamp:   p.PaymentDate,
		})
	}
	for _, m := range maintenance {
		items = append(items, ActivityItem{
			Type:        "maintenance",
			Title:       "Maintenance update",
			Description: m.HouseNumber + " - " + m.Description,
			Timestamp:   m.DateOfMaintenance,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// 3. ExportMonthlyRevenue materializes revenue summed per calendar month
func (s *ReportService) ExportMonthlyRevenue() (*Export, error) {
	var payments []models.Payment
	if err := s.DB.Find(&payments).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, p := range payments {
		key := p.PaymentDate.Format("2006-01")
		byMonth[key] = byMonth[key].Add(p.AmountPaid)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	rows := make([][]interface{}, 0, len(months))
	for _, m := range months {
		rows = append(rows, []interface{}{m, byMonth[m]})
	}

	data, err := marshalCSV([]string{"Month", "Revenue"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: FileMonthlyRevenue, Data: data}, nil
}

// 4. ExportTenantStatements materializes the full payment history grouped
// by tenant
func (s *ReportService) ExportTenantStatements() (*Export, error) {
	var payments []models.Payment
	if err := s.DB.Order("tenant_name asc, payment_date asc, id asc").Find(&payments).Error; err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []interface{}{
			p.TenantName,
			p.HouseNumber,
			p.AmountPaid,
			p.PaymentMethod,
			p.PaymentDate.Format("2006-01-02"),
		})
	}

	data, err := marshalCSV([]string{"Tenant", "House", "Amount", "Method", "Date"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: FileTenantStatements, Data: data}, nil
}

// 5. ExportMaintenanceCosts materializes maintenance expenses
func (s *ReportService) ExportMaintenanceCosts() (*Export, error) {
	var requests []models.Maintenance
	if err := s.DB.Order("date_of_maintenance asc, id asc").Find(&requests).Error; err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(requests))
	for _, m := range requests {
		rows = append(rows, []interface{}{
			m.HouseNumber,
			m.Description,
			m.Status,
			m.ContractorName,
			m.Cost,
			m.DateOfMaintenance.Format("2006-01-02"),
		})
	}

	data, err := marshalCSV([]string{"House", "Description", "Status", "Contractor", "Cost", "Date"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: FileMaintenanceCosts, Data: data}, nil
}

// 6. ExportOccupancyAnalysis materializes the occupancy snapshot
func (s *ReportService) ExportOccupancyAnalysis() (*Export, error) {
	var units []models.Unit
	if err := s.DB.Order("house_number asc").Find(&units).Error; err != nil {
		return nil, err
	}

	var tenants []models.Tenant
	if err := s.DB.Where("house_number IS NOT NULL").Find(&tenants).Error; err != nil {
		return nil, err
	}
	tenantByHouse := make(map[string]string, len(tenants))
	for _, t := range tenants {
		if t.HouseNumber != nil {
			tenantByHouse[*t.HouseNumber] = t.TenantName
		}
	}

	rows := make([][]interface{}, 0, len(units))
	for _, u := range units {
		rows = append(rows, []interface{}{
			u.HouseNumber,
			u.Bedrooms,
			u.RentAmount,
			u.OccupancyStatus,
			tenantByHouse[u.HouseNumber],
		})
	}

	data, err := marshalCSV([]string{"House", "Bedrooms", "Rent", "Status", "Tenant"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: FileOccupancyAnalysis, Data: data}, nil
}

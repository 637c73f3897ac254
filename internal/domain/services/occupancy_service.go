package services

import (
	"errors"
	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// OccupancyMismatch reports one unit whose occupancy_status disagrees with
// the tenant table.
type OccupancyMismatch struct {
	HouseNumber    string `json:"house_number"`
	Status         string `json:"occupancy_status"`
	TenantCount    int64  `json:"tenant_count"`
	ExpectedStatus string `json:"expected_status"`
}

// InterfaceOccupancyService defines the unit-occupancy tracker interface
type InterfaceOccupancyService interface {
	SetOccupancy(houseNumber, status string) error
	ListVacant() ([]models.Unit, error)
	ListOccupiedHouseNumbers() ([]string, error)
	Audit() ([]OccupancyMismatch, error)
}

// OccupancyService owns the invariant that a unit's occupancy_status matches
// whether a tenant row currently references it. It issues single-unit writes
// only; multi-write sequencing is the assignment service's job.
type OccupancyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOccupancyService creates a new occupancy service
func NewOccupancyService(db *gorm.DB, cfg *config.Config) InterfaceOccupancyService {
	return &OccupancyService{
		DB:     db,
		Config: cfg,
	}
}

// 1. SetOccupancy writes occupancy_status for the unit with that house number.
// One write, atomic from the caller's perspective.
func (s *OccupancyService) SetOccupancy(houseNumber, status string) error {
	if status != models.OccupancyOccupied && status != models.OccupancyUnoccupied && status != models.OccupancyUnderMaintenance {
		return errors.New("invalid occupancy status: " + status)
	}

	result := s.DB.Model(&models.Unit{}).
		Where("house_number = ?", houseNumber).
		Update("occupancy_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("unit not found: " + houseNumber)
	}
	return nil
}

// 2. ListVacant returns all Unoccupied units ordered by house_number ascending
func (s *OccupancyService) ListVacant() ([]models.Unit, error) {
	var units []models.Unit
	if err := s.DB.Where("occupancy_status = ?", models.OccupancyUnoccupied).
		Order("house_number asc").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// 3. ListOccupiedHouseNumbers returns the house numbers currently bound to a
// tenant, used to scope payment/invoice queries to active tenancies.
func (s *OccupancyService) ListOccupiedHouseNumbers() ([]string, error) {
	var houses []string
	if err := s.DB.Model(&models.Tenant{}).
		Where("house_number IS NOT NULL").
		Order("house_number asc").
		Pluck("house_number", &houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

// 4. Audit reports every unit whose status disagrees with the tenant table.
// Units under maintenance are exempt: the status is a manual override there.
func (s *OccupancyService) Audit() ([]OccupancyMismatch, error) {
	var units []models.Unit
	if err := s.DB.Find(&units).Error; err != nil {
		return nil, err
	}

	mismatches := []OccupancyMismatch{}
	for _, u := range units {
		if u.OccupancyStatus == models.OccupancyUnderMaintenance {
			continue
		}

		var count int64
		if err := s.DB.Model(&models.Tenant{}).
			Where("house_number = ?", u.HouseNumber).
			Count(&count).Error; err != nil {
			return nil, err
		}

		expected := models.OccupancyUnoccupied
		if count > 0 {
			expected = models.OccupancyOccupied
		}
		if u.OccupancyStatus != expected {
			mismatches = append(mismatches, OccupancyMismatch{
				HouseNumber:    u.HouseNumber,
				Status:         u.OccupancyStatus,
				TenantCount:    count,
				ExpectedStatus: expected,
			})
		}
	}
	return mismatches, nil
}

package services

import (
	"errors"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// statusRank orders maintenance statuses; transitions may only move up
var statusRank = map[string]int{
	models.MaintenancePending:    0,
	models.MaintenanceInProgress: 1,
	models.MaintenanceCompleted:  2,
}

// InterfaceMaintenanceService defines the maintenance service interface
type InterfaceMaintenanceService interface {
	GetAllMaintenance(page, pageSize int) ([]models.Maintenance, int64, error)
	GetMaintenanceByID(id uint) (*models.Maintenance, error)
	CreateMaintenance(m *models.Maintenance) error
	UpdateStatus(id uint, status string) (*models.Maintenance, error)
	PendingCount() (int64, error)
}

// MaintenanceService manages repair requests against units
type MaintenanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceService {
	return &MaintenanceService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllMaintenance returns maintenance requests with pagination
func (s *MaintenanceService) GetAllMaintenance(page, pageSize int) ([]models.Maintenance, int64, error) {
	var requests []models.Maintenance
	var total int64

	if err := s.DB.Model(&models.Maintenance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).
		Order("date_of_maintenance desc").
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// 2. GetMaintenanceByID returns a maintenance request by row id
func (s *MaintenanceService) GetMaintenanceByID(id uint) (*models.Maintenance, error) {
	var m models.Maintenance
	if err := s.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("maintenance request not found")
		}
		return nil, err
	}
	return &m, nil
}

// 3. CreateMaintenance creates a new request, defaulting to Pending
func (s *MaintenanceService) CreateMaintenance(m *models.Maintenance) error {
	if m.HouseNumber == "" {
		return errors.New("house number is required")
	}
	if m.Description == "" {
		return errors.New("description is required")
	}
	if m.Status == "" {
		m.Status = models.MaintenancePending
	}
	if _, ok := statusRank[m.Status]; !ok {
		return errors.New("invalid maintenance status: " + m.Status)
	}

	return s.DB.Create(m).Error
}

// 4. UpdateStatus moves a request's status forward only:
// Pending -> In Progress -> Completed
func (s *MaintenanceService) UpdateStatus(id uint, status string) (*models.Maintenance, error) {
	m, err := s.GetMaintenanceByID(id)
	if err != nil {
		return nil, err
	}

	newRank, ok := statusRank[status]
	if !ok {
		return nil, errors.New("invalid maintenance status: " + status)
	}
	if newRank < statusRank[m.Status] {
		return nil, errors.New("maintenance status may only move forward")
	}

	if err := s.DB.Model(m).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetMaintenanceByID(id)
}

// 5. PendingCount returns how many requests still await action
func (s *MaintenanceService) PendingCount() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Maintenance{}).
		Where("status = ?", models.MaintenancePending).
		Count(&count).Error
	return count, err
}

package services

import (
	"errors"
	"fmt"
	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"
	"sternkern-rent-nexus/pkg/logger"

	"gorm.io/gorm"
)

// ErrInconsistentAssignment marks a partial multi-write failure whose
// compensation also failed. The tenant and unit tables disagree and need
// manual reconciliation.
var ErrInconsistentAssignment = errors.New("tenant and unit records are inconsistent, manual reconciliation required")

// InterfaceTenantService defines the tenant assignment service interface
type InterfaceTenantService interface {
	GetAllTenants(page, pageSize int) ([]models.Tenant, int64, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantByHouse(houseNumber string) (*models.Tenant, error)
	AddTenant(tenant *models.Tenant, houseNumber string) error
	UpdateTenant(id uint, updates map[string]interface{}) (*models.Tenant, error)
	ShiftTenant(currentHouseNumber, targetHouseNumber string) error
	VacateTenant(houseNumber string) error
}

// TenantService creates and moves tenant/unit bindings, keeping unit
// occupancy statuses correct through the occupancy tracker. The store offers
// no cross-table transaction to this layer, so multi-write sequences run as
// sagas: completed steps are recorded and compensated on a later failure.
type TenantService struct {
	DB        *gorm.DB
	Config    *config.Config
	Occupancy InterfaceOccupancyService
}

// NewTenantService creates a new tenant service
func NewTenantService(db *gorm.DB, cfg *config.Config, occupancy InterfaceOccupancyService) InterfaceTenantService {
	return &TenantService{
		DB:        db,
		Config:    cfg,
		Occupancy: occupancy,
	}
}

// sagaStep is one completed write with its compensating action
type sagaStep struct {
	name string
	undo func() error
}

// assignmentSaga records completed steps of a multi-write sequence so a
// later failure can be compensated instead of leaving silent drift.
type assignmentSaga struct {
	steps []sagaStep
}

func (s *assignmentSaga) record(name string, undo func() error) {
	s.steps = append(s.steps, sagaStep{name: name, undo: undo})
}

// compensate undoes completed steps in reverse order. Returns the names of
// steps whose compensation failed.
func (s *assignmentSaga) compensate() []string {
	var failed []string
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if step.undo == nil {
			continue
		}
		if err := step.undo(); err != nil {
			logger.Error("compensation for step %q failed: %v", step.name, err)
			failed = append(failed, step.name)
		}
	}
	return failed
}

// fail compensates and wraps the triggering error. If compensation itself
// failed the result carries ErrInconsistentAssignment so callers surface it
// prominently instead of retrying.
func (s *assignmentSaga) fail(cause error) error {
	if failed := s.compensate(); len(failed) > 0 {
		return fmt.Errorf("%w: %v (uncompensated steps: %v)", ErrInconsistentAssignment, cause, failed)
	}
	return cause
}

// 1. GetAllTenants returns tenants with pagination
func (s *TenantService) GetAllTenants(page, pageSize int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := s.DB.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Order("tenant_name asc").Find(&tenants).Error; err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// 2. GetTenantByID returns a tenant by row id
func (s *TenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("tenant not found")
		}
		return nil, err
	}
	return &tenant, nil
}

// 3. GetTenantByHouse returns the tenant currently bound to a house number
func (s *TenantService) GetTenantByHouse(houseNumber string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.Where("house_number = ?", houseNumber).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no tenant at " + houseNumber)
		}
		return nil, err
	}
	return &tenant, nil
}

// requireVacantUnit verifies the unit exists and is Unoccupied at the store
// level, not just in whatever list the caller rendered.
func (s *TenantService) requireVacantUnit(houseNumber string) error {
	var unit models.Unit
	if err := s.DB.Where("house_number = ?", houseNumber).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("unit not found: " + houseNumber)
		}
		return err
	}
	if unit.OccupancyStatus != models.OccupancyUnoccupied {
		return errors.New("unit " + houseNumber + " is not vacant")
	}
	return nil
}

// 4. AddTenant onboards a tenant to a vacant unit. The tenant insert runs
// before the occupancy update: if the second write fails the unit still
// shows Unoccupied with a tenant record present, which is recoverable; the
// reverse order would advertise an occupied unit with no tenant.
func (s *TenantService) AddTenant(tenant *models.Tenant, houseNumber string) error {
	if tenant.TenantName == "" {
		return errors.New("tenant name is required")
	}
	if err := s.requireVacantUnit(houseNumber); err != nil {
		return err
	}

	var existing int64
	if err := s.DB.Model(&models.Tenant{}).Where("house_number = ?", houseNumber).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return errors.New("unit " + houseNumber + " already has a tenant record")
	}

	saga := &assignmentSaga{}

	tenant.HouseNumber = &houseNumber
	if err := s.DB.Create(tenant).Error; err != nil {
		return err
	}
	saga.record("insert tenant", func() error {
		return s.DB.Delete(&models.Tenant{}, tenant.ID).Error
	})

	if err := s.Occupancy.SetOccupancy(houseNumber, models.OccupancyOccupied); err != nil {
		return saga.fail(fmt.Errorf("tenant created but occupancy update failed: %w", err))
	}

	return nil
}

// 5. UpdateTenant updates contact fields. House moves go through ShiftTenant.
func (s *TenantService) UpdateTenant(id uint, updates map[string]interface{}) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}

	// The binding is owned by the assignment operations
	delete(updates, "house_number")

	if err := s.DB.Model(tenant).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetTenantByID(id)
}

// 6. ShiftTenant moves the tenant at currentHouseNumber to a vacant target
// unit. Three sequenced writes: tenant row, source status, target status.
// On partial failure completed steps are compensated; if compensation also
// fails the error carries ErrInconsistentAssignment for the operator.
func (s *TenantService) ShiftTenant(currentHouseNumber, targetHouseNumber string) error {
	if currentHouseNumber == targetHouseNumber {
		return errors.New("target unit must differ from the current unit")
	}

	tenant, err := s.GetTenantByHouse(currentHouseNumber)
	if err != nil {
		return err
	}
	if err := s.requireVacantUnit(targetHouseNumber); err != nil {
		return err
	}

	saga := &assignmentSaga{}

	// Step 1: move the tenant record
	if err := s.DB.Model(&models.Tenant{}).
		Where("id = ?", tenant.ID).
		Update("house_number", targetHouseNumber).Error; err != nil {
		return err
	}
	saga.record("move tenant record", func() error {
		return s.DB.Model(&models.Tenant{}).
			Where("id = ?", tenant.ID).
			Update("house_number", currentHouseNumber).Error
	})

	// Step 2: free the source unit
	if err := s.Occupancy.SetOccupancy(currentHouseNumber, models.OccupancyUnoccupied); err != nil {
		return saga.fail(fmt.Errorf("source unit status update failed: %w", err))
	}
	saga.record("free source unit", func() error {
		return s.Occupancy.SetOccupancy(currentHouseNumber, models.OccupancyOccupied)
	})

	// Step 3: occupy the target unit
	if err := s.Occupancy.SetOccupancy(targetHouseNumber, models.OccupancyOccupied); err != nil {
		return saga.fail(fmt.Errorf("target unit status update failed: %w", err))
	}

	logger.Info("tenant %s shifted from %s to %s", tenant.TenantName, currentHouseNumber, targetHouseNumber)
	return nil
}

// 7. VacateTenant removes the tenant bound to a unit and frees the unit.
// Delete-then-free ordering for the same reason as AddTenant: a failure
// between the writes leaves an occupied-status unit with no tenant, which
// the audit surfaces, rather than a vacant-status unit still holding one.
func (s *TenantService) VacateTenant(houseNumber string) error {
	tenant, err := s.GetTenantByHouse(houseNumber)
	if err != nil {
		return err
	}

	saga := &assignmentSaga{}

	snapshot := *tenant
	if err := s.DB.Delete(&models.Tenant{}, tenant.ID).Error; err != nil {
		return err
	}
	saga.record("delete tenant", func() error {
		restored := snapshot
		restored.ID = 0
		return s.DB.Create(&restored).Error
	})

	if err := s.Occupancy.SetOccupancy(houseNumber, models.OccupancyUnoccupied); err != nil {
		return saga.fail(fmt.Errorf("tenant removed but occupancy update failed: %w", err))
	}

	return nil
}

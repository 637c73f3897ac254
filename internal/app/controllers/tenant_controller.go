package controllers

import (
	"errors"
	"strconv"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceTenantController defines the tenant controller interface
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	ShiftTenant()
	VacateTenant()
}

// TenantController handles tenant assignment requests
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController creates a new tenant controller
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest represents a tenant onboarding request. The house number
// must name a vacant unit.
type TenantRequest struct {
	TenantName    string `json:"tenant_name" binding:"required" example:"Jane Wanjiku"`
	ContactNumber string `json:"contact_number" example:"0712345678"`
	Email         string `json:"email" binding:"omitempty,email" example:"jane@tenant.com"`
	HouseNumber   string `json:"house_number" binding:"required" example:"A1"`
}

// UpdateTenantRequest represents a tenant contact update. House moves go
// through the shift endpoint instead.
type UpdateTenantRequest struct {
	TenantName    string `json:"tenant_name" example:"Jane W. Kamau"`
	ContactNumber string `json:"contact_number" example:"0798765432"`
	Email         string `json:"email" binding:"omitempty,email" example:"jane.k@tenant.com"`
}

// ShiftTenantRequest represents a move between units
type ShiftTenantRequest struct {
	CurrentHouseNumber string `json:"current_house_number" binding:"required" example:"A1"`
	TargetHouseNumber  string `json:"target_house_number" binding:"required" example:"B2"`
}

// GetTenants lists all tenants
// @Summary      List tenants
// @Description  Get all tenants with pagination
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants [get]
func (c *TenantController) GetTenants() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, total, err := tenantService.GetAllTenants(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list tenants", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        tenants,
	})
}

// GetTenant returns one tenant
// @Summary      Get tenant
// @Description  Get a tenant by ID
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid tenant id")
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByID(uint(idUint))
	if err != nil {
		if err.Error() == "tenant not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to get tenant", nil)
		return
	}

	response.Success(c.Ctx, tenant)
}

// CreateTenant onboards a tenant to a vacant unit
// @Summary      Create tenant
// @Description  Onboard a tenant and bind them to a vacant unit
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        request body TenantRequest true "Tenant fields, house number must be vacant"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants [post]
func (c *TenantController) CreateTenant() {
	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	tenant := &models.Tenant{
		TenantName:    req.TenantName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.AddTenant(tenant, req.HouseNumber); err != nil {
		if errors.Is(err, services.ErrInconsistentAssignment) {
			response.Fail(c.Ctx, code.ErrAssignmentInconsistent, gin.H{"detail": err.Error()})
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUnitNotVacant, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, tenant)
}

// UpdateTenant updates tenant contact fields
// @Summary      Update tenant
// @Description  Update a tenant's name and contact details
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Param        request body UpdateTenantRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants/{id} [put]
func (c *TenantController) UpdateTenant() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid tenant id")
		return
	}

	var req UpdateTenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	updates := make(map[string]interface{})
	if req.TenantName != "" {
		updates["tenant_name"] = req.TenantName
	}
	if req.ContactNumber != "" {
		updates["contact_number"] = req.ContactNumber
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.UpdateTenant(uint(idUint), updates)
	if err != nil {
		if err.Error() == "tenant not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update tenant", nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, tenant)
}

// ShiftTenant moves a tenant from their current unit to a vacant one
// @Summary      Shift tenant
// @Description  Move the tenant at the current house number to a vacant target unit
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        request body ShiftTenantRequest true "Source and target house numbers"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants/shift [post]
func (c *TenantController) ShiftTenant() {
	var req ShiftTenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.ShiftTenant(req.CurrentHouseNumber, req.TargetHouseNumber); err != nil {
		if errors.Is(err, services.ErrInconsistentAssignment) {
			response.Fail(c.Ctx, code.ErrAssignmentInconsistent, gin.H{"detail": err.Error()})
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUnitNotVacant, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, gin.H{
		"from": req.CurrentHouseNumber,
		"to":   req.TargetHouseNumber,
	})
}

// VacateTenant removes the tenant bound to a unit and frees the unit
// @Summary      Vacate tenant
// @Description  Remove the tenant at the given house number and mark the unit Unoccupied
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        house_number path string true "House number"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants/vacate/{house_number} [post]
func (c *TenantController) VacateTenant() {
	houseNumber := c.Ctx.Param("house_number")
	if houseNumber == "" {
		response.ParamError(c.Ctx, "house number is required")
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.VacateTenant(houseNumber); err != nil {
		if errors.Is(err, services.ErrInconsistentAssignment) {
			response.Fail(c.Ctx, code.ErrAssignmentInconsistent, gin.H{"detail": err.Error()})
			return
		}
		response.NotFound(c.Ctx, err.Error())
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, gin.H{"house_number": houseNumber})
}

// HandleTenantFunc returns a Gin handler for tenant requests
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "shiftTenant":
			controller.ShiftTenant()
		case "vacateTenant":
			controller.VacateTenant()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

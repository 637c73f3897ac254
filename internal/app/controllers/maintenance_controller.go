package controllers

import (
	"strconv"
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceMaintenanceController defines the maintenance controller interface
type InterfaceMaintenanceController interface {
	GetMaintenanceRequests()
	GetMaintenanceRequest()
	CreateMaintenanceRequest()
	UpdateMaintenanceStatus()
}

// MaintenanceController handles maintenance requests
type MaintenanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMaintenanceController creates a new maintenance controller
func NewMaintenanceController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceController {
	return &MaintenanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// MaintenanceRequest represents a repair request
type MaintenanceRequest struct {
	HouseNumber       string          `json:"house_number" binding:"required" example:"A1"`
	Description       string          `json:"description" binding:"required" example:"Leaking kitchen tap"`
	ContractorName    string          `json:"contractor_name" example:"Otieno Plumbing"`
	Cost              decimal.Decimal `json:"cost" example:"3500"`
	DateOfMaintenance string          `json:"date_of_maintenance" example:"2025-01-10"`
}

// MaintenanceStatusRequest represents a status transition
type MaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required" example:"In Progress"`
}

// GetMaintenanceRequests lists all maintenance requests
// @Summary      List maintenance requests
// @Description  Get all maintenance requests with pagination, newest first
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /maintenance [get]
func (c *MaintenanceController) GetMaintenanceRequests() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	requests, total, err := maintenanceService.GetAllMaintenance(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list maintenance requests", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        requests,
	})
}

// GetMaintenanceRequest returns one maintenance request
// @Summary      Get maintenance request
// @Description  Get a maintenance request by ID
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Maintenance request ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /maintenance/{id} [get]
func (c *MaintenanceController) GetMaintenanceRequest() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid maintenance request id")
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	m, err := maintenanceService.GetMaintenanceByID(uint(idUint))
	if err != nil {
		if err.Error() == "maintenance request not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to get maintenance request", nil)
		return
	}

	response.Success(c.Ctx, m)
}

// CreateMaintenanceRequest files a new repair request
// @Summary      Create maintenance request
// @Description  File a repair request against a unit, defaulting to Pending
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        request body MaintenanceRequest true "Maintenance fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /maintenance [post]
func (c *MaintenanceController) CreateMaintenanceRequest() {
	var req MaintenanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	m := &models.Maintenance{
		HouseNumber:       req.HouseNumber,
		Description:       req.Description,
		ContractorName:    req.ContractorName,
		Cost:              req.Cost,
		DateOfMaintenance: time.Now(),
	}
	if req.DateOfMaintenance != "" {
		date, err := time.Parse("2006-01-02", req.DateOfMaintenance)
		if err != nil {
			response.ParamError(c.Ctx, "date_of_maintenance must be YYYY-MM-DD")
			return
		}
		m.DateOfMaintenance = date
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	if err := maintenanceService.CreateMaintenance(m); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, m)
}

// UpdateMaintenanceStatus moves a request's status forward
// @Summary      Update maintenance status
// @Description  Advance a request's status: Pending to In Progress to Completed
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Maintenance request ID"
// @Param        request body MaintenanceStatusRequest true "New status"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Status may only move forward"
// @Failure      500  {object}  ErrorResponse
// @Router       /maintenance/{id}/status [put]
func (c *MaintenanceController) UpdateMaintenanceStatus() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid maintenance request id")
		return
	}

	var req MaintenanceStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	m, err := maintenanceService.UpdateStatus(uint(idUint), req.Status)
	if err != nil {
		if err.Error() == "maintenance request not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrMaintenanceBadTransition, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, m)
}

// HandleMaintenanceFunc returns a Gin handler for maintenance requests
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceController(ctx, container)

		switch method {
		case "getMaintenanceRequests":
			controller.GetMaintenanceRequests()
		case "getMaintenanceRequest":
			controller.GetMaintenanceRequest()
		case "createMaintenanceRequest":
			controller.CreateMaintenanceRequest()
		case "updateMaintenanceStatus":
			controller.UpdateMaintenanceStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

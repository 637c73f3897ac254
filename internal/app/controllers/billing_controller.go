package controllers

import (
	"time"

	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
)

// snapshotTTL bounds how stale a cached derived view may get if an
// invalidation is missed.
const snapshotTTL = 5 * time.Minute

// InterfaceBillingController defines the billing controller interface
type InterfaceBillingController interface {
	GetRentSummary()
	GetPreviousArrears()
	GetOutstandingTotal()
}

// BillingController handles derived billing view requests
type BillingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillingController creates a new billing controller
func NewBillingController(ctx *gin.Context, container *container.ServiceContainer) *BillingController {
	return &BillingController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetRentSummary returns one row per occupied unit with the running balance
// @Summary      Rent summary
// @Description  Per-unit balances: previous arrears plus current rent minus the latest payment
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /billing/summary [get]
func (c *BillingController) GetRentSummary() {
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if rows, err := redisService.GetRentSummary(); err == nil && rows != nil {
		response.Success(c.Ctx, rows)
		return
	}

	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	rows, err := billingService.RentSummary()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build rent summary", nil)
		return
	}

	_ = redisService.CacheRentSummary(rows, snapshotTTL)
	response.Success(c.Ctx, rows)
}

// GetPreviousArrears returns one unit's carry-over arrears
// @Summary      Previous arrears
// @Description  Sum of unpaid invoice amounts from billing months before the current one
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        house_number path string true "House number"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /billing/arrears/{house_number} [get]
func (c *BillingController) GetPreviousArrears() {
	houseNumber := c.Ctx.Param("house_number")
	if houseNumber == "" {
		response.ParamError(c.Ctx, "house number is required")
		return
	}

	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	arrears, err := billingService.PreviousArrears(houseNumber)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to compute arrears", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"house_number":     houseNumber,
		"previous_arrears": arrears,
	})
}

// GetOutstandingTotal returns the portfolio-wide outstanding amount
// @Summary      Outstanding total
// @Description  Sum of amount due across all invoices
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /billing/outstanding [get]
func (c *BillingController) GetOutstandingTotal() {
	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	total, err := billingService.OutstandingTotal()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to compute outstanding total", nil)
		return
	}

	response.Success(c.Ctx, gin.H{"outstanding_total": total})
}

// HandleBillingFunc returns a Gin handler for billing requests
func HandleBillingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillingController(ctx, container)

		switch method {
		case "getRentSummary":
			controller.GetRentSummary()
		case "getPreviousArrears":
			controller.GetPreviousArrears()
		case "getOutstandingTotal":
			controller.GetOutstandingTotal()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

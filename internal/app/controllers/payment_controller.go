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

// InterfacePaymentController defines the payment controller interface
type InterfacePaymentController interface {
	GetPayments()
	GetPaymentsByHouse()
	RecordPayment()
}

// PaymentController handles payment requests
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController creates a new payment controller
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest represents a payment record request
type PaymentRequest struct {
	TenantName    string          `json:"tenant_name" example:"Jane Wanjiku"`
	HouseNumber   string          `json:"house_number" binding:"required" example:"A1"`
	AmountPaid    decimal.Decimal `json:"amount_paid" binding:"required" example:"25000"`
	PaymentMethod string          `json:"payment_method" binding:"required" example:"M-Pesa"`
	InvoiceID     *uint           `json:"invoice_id" example:"1"`
	PaymentDate   string          `json:"payment_date" example:"2025-01-05"`
}

// GetPayments lists all payments
// @Summary      List payments
// @Description  Get all payments with pagination, newest first
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.GetAllPayments(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list payments", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        payments,
	})
}

// GetPaymentsByHouse returns one unit's full payment history
// @Summary      List payments by house
// @Description  Get the full payment history of one unit, newest first
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        house_number path string true "House number"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payments/house/{house_number} [get]
func (c *PaymentController) GetPaymentsByHouse() {
	houseNumber := c.Ctx.Param("house_number")
	if houseNumber == "" {
		response.ParamError(c.Ctx, "house number is required")
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, err := paymentService.GetPaymentsByHouse(houseNumber)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list payments", nil)
		return
	}

	response.Success(c.Ctx, payments)
}

// RecordPayment appends one payment row
// @Summary      Record payment
// @Description  Record a received payment against a unit
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "Payment fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payments [post]
func (c *PaymentController) RecordPayment() {
	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	payment := &models.Payment{
		TenantName:    req.TenantName,
		HouseNumber:   req.HouseNumber,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		InvoiceID:     req.InvoiceID,
	}
	if req.PaymentDate != "" {
		paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			response.ParamError(c.Ctx, "payment_date must be YYYY-MM-DD")
			return
		}
		payment.PaymentDate = paymentDate
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	if err := paymentService.RecordPayment(payment); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrPaymentInvalidAmount, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, payment)
}

// HandlePaymentFunc returns a Gin handler for payment requests
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getPaymentsByHouse":
			controller.GetPaymentsByHouse()
		case "recordPayment":
			controller.RecordPayment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "request binding error",
	ErrValidation:       "request validation error",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "permission denied for this role",
	ErrTooManyRequests:  "request rate too high",

	// User error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect username or password",

	// Unit error codes
	ErrUnitNotFound:     "unit not found",
	ErrUnitAlreadyExist: "house number already exists",
	ErrUnitOccupied:     "unit already has a tenant",
	ErrUnitNotVacant:    "unit is not vacant",

	// Tenant error codes
	ErrTenantNotFound:         "tenant not found",
	ErrTenantAlreadyExist:     "tenant already exists",
	ErrAssignmentInconsistent: "tenant and unit records are inconsistent, manual reconciliation required",

	// Invoice error codes
	ErrInvoiceNotFound:  "invoice not found",
	ErrInvoiceDuplicate: "invoice already exists for this unit and billing month",

	// Payment error codes
	ErrPaymentNotFound:      "payment not found",
	ErrPaymentInvalidAmount: "payment amount must be positive",

	// Maintenance error codes
	ErrMaintenanceNotFound:      "maintenance request not found",
	ErrMaintenanceBadTransition: "maintenance status may only move forward",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// User error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Unit error codes
	ErrUnitNotFound:     StatusNotFound,
	ErrUnitAlreadyExist: StatusBadRequest,
	ErrUnitOccupied:     StatusConflict,
	ErrUnitNotVacant:    StatusConflict,

	// Tenant error codes
	ErrTenantNotFound:         StatusNotFound,
	ErrTenantAlreadyExist:     StatusBadRequest,
	ErrAssignmentInconsistent: StatusInternalServerError,

	// Invoice error codes
	ErrInvoiceNotFound:  StatusNotFound,
	ErrInvoiceDuplicate: StatusConflict,

	// Payment error codes
	ErrPaymentNotFound:      StatusNotFound,
	ErrPaymentInvalidAmount: StatusBadRequest,

	// Maintenance error codes
	ErrMaintenanceNotFound:      StatusNotFound,
	ErrMaintenanceBadTransition: StatusConflict,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}

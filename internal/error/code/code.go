package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflicting state.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: role lacks the required capability.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Unit error codes (102xxx).
const (
	// ErrUnitNotFound - 404: unit not found.
	ErrUnitNotFound int = iota + 102000
	// ErrUnitAlreadyExist - 400: house number already exists.
	ErrUnitAlreadyExist
	// ErrUnitOccupied - 409: unit already has a tenant.
	ErrUnitOccupied
	// ErrUnitNotVacant - 409: unit is not available for assignment.
	ErrUnitNotVacant
)

// Tenant error codes (103xxx).
const (
	// ErrTenantNotFound - 404: tenant not found.
	ErrTenantNotFound int = iota + 103000
	// ErrTenantAlreadyExist - 400: tenant already exists.
	ErrTenantAlreadyExist
	// ErrAssignmentInconsistent - 500: tenant/unit tables disagree after a partial write.
	ErrAssignmentInconsistent
)

// Invoice error codes (104xxx).
const (
	// ErrInvoiceNotFound - 404: invoice not found.
	ErrInvoiceNotFound int = iota + 104000
	// ErrInvoiceDuplicate - 409: invoice already exists for the unit and billing month.
	ErrInvoiceDuplicate
)

// Payment error codes (105xxx).
const (
	// ErrPaymentNotFound - 404: payment not found.
	ErrPaymentNotFound int = iota + 105000
	// ErrPaymentInvalidAmount - 400: payment amount must be positive.
	ErrPaymentInvalidAmount
)

// Maintenance error codes (106xxx).
const (
	// ErrMaintenanceNotFound - 404: maintenance request not found.
	ErrMaintenanceNotFound int = iota + 106000
	// ErrMaintenanceBadTransition - 409: status may only move forward.
	ErrMaintenanceBadTransition
)

// Database error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)

package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrCredentialsRequired ErrCode = "CREDENTIALS_REQUIRED"
	ErrInvalidCredentials  ErrCode = "INVALID_CREDENTIALS"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrDuplicateUsername ErrCode = "DUPLICATE_USERNAME"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrCredentialsRequired:
		return "Admin credentials are required for this operation."
	case ErrInvalidCredentials:
		return "Invalid username or password."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrDuplicateUsername:
		return "This username is already taken."
	case ErrNotFound:
		return "Resource not found."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}

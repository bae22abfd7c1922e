package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the parsed form of a collaborator failure.
type ErrorInfo struct {
	Code    string // error code (see codes.go)
	Message string // user-facing message
}

// ParseError classifies an error into a code and a message the admin
// panel can show. Sensitive driver detail stays out of the message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An unexpected server error occurred",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM base errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundInfo(context)
	}

	// 2. PostgreSQL constraint errors

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "This record already exists",
		}
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		if strings.Contains(errStrLower, "category_id") {
			return ErrorInfo{
				Code:    CategoryNotFound,
				Message: "The selected category does not exist",
			}
		}
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "The record references data that does not exist",
		}
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// 3. Network / connectivity
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Could not reach a backing service. Please try again shortly",
		}
	}

	// 4. Default internal error
	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

func notFoundInfo(context string) ErrorInfo {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "category"):
		return ErrorInfo{Code: CategoryNotFound, Message: "Category not found"}
	case strings.Contains(contextLower, "menu item"), strings.Contains(contextLower, "menu_item"):
		return ErrorInfo{Code: MenuItemNotFound, Message: "Menu item not found"}
	case strings.Contains(contextLower, "special"):
		return ErrorInfo{Code: SpecialMenuNotFound, Message: "Special menu not found"}
	case strings.Contains(contextLower, "event"):
		return ErrorInfo{Code: EventNotFound, Message: "Event not found"}
	}
	return ErrorInfo{Code: ResourceNotFound, Message: "The requested record was not found"}
}

func defaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") {
		return "Something went wrong while saving. Please try again shortly"
	}
	if strings.Contains(contextLower, "update") {
		return "Something went wrong while updating. Please try again shortly"
	}
	if strings.Contains(contextLower, "delete") {
		return "Something went wrong while deleting. Please try again shortly"
	}
	return "An unexpected server error occurred. Please try again shortly"
}

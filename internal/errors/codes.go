package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The admin frontend maps these codes to display messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthForbidden          = "AUTH_FORBIDDEN"

	// ==================== Validation (VALIDATION_) ====================
	ValidationFailed        = "VALIDATION_FAILED"
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Content entities ====================
	CategoryNotFound    = "CATEGORY_NOT_FOUND"
	MenuItemNotFound    = "MENU_ITEM_NOT_FOUND"
	SpecialMenuNotFound = "SPECIAL_MENU_NOT_FOUND"
	EventNotFound       = "EVENT_NOT_FOUND"
	CategoryRequired    = "CATEGORY_REQUIRED"

	// ==================== Upload / storage (UPLOAD_/STORAGE_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"
	ImageRequired         = "IMAGE_REQUIRED"
	StorageDeleteFailed   = "STORAGE_DELETE_FAILED"
	StorageUsageFailed    = "STORAGE_USAGE_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)

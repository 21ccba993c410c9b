package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
	ContextKeyRequestID = "request_id"

	// Database table names
	TablePermissions     = "permissions"
	TableRoles           = "roles"
	TableRolePermissions = "role_permissions"
	TableUserRoles       = "user_roles"
	TableProfiles        = "profiles"

	// Field limits
	MaxNameLength        = 100
	MaxDescriptionLength = 500

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)

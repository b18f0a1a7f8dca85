package constants

// Roles
const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

// Show completion status buckets
const (
	STATUS_TODO        = "todo"
	STATUS_IN_PROGRESS = "in-progress"
	STATUS_DONE        = "done"
)

// Image types. One "scene" photo set plus named crop formats; at most one
// image per crop format may exist per show.
const (
	IMAGE_TYPE_SCENE           = "scene"
	IMAGE_TYPE_CROP_HERO       = "crop_hero"
	IMAGE_TYPE_CROP_UITLICHTEN = "crop_uitlichten"
	IMAGE_TYPE_CROP_NARROW     = "crop_narrow"
)

// Settings key prefix for persisted sort orders
const SORT_ORDER_PREFIX = "sort_order_"

// Response messages
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_NOT_FOUND            = "Record not found"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Password does not match"
	ACCOUNT_NOT_ACTIVE         = "Account is not active"
	ERROR_UPLOAD               = "Upload failed"
	ERROR_UNAUTHORIZED         = "Invalid token"
	ERROR_FORBIDDEN            = "Admin role required"
	ERROR_AI_GATEWAY           = "AI gateway error"
	ERROR_AI_RATE_LIMIT        = "Rate limit reached, try again later"
	ERROR_AI_NO_CREDITS        = "No AI credits available"
)

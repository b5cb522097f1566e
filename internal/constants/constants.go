package constants

// Session and context keys
const (
	SessionCookieName = "tracker_session"
	ContextKeyUserID  = "user_id"
)

// Pagination
const (
	MinPage                = 1
	DefaultProjectPageSize = 6
	MaxPageSize            = 100
)

// Auth
const (
	MinPasswordLength = 8
)

// DateLayout is the wire format for date-only fields (start/end/due/birth dates).
const DateLayout = "2006-01-02"

// DefaultTimezone is the timezone assigned to freshly created profiles.
const DefaultTimezone = "UTC"

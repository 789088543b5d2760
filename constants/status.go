package constants

// User role
const (
	RoleNone     = -1
	RoleStudent  = 0
	RoleLecturer = 1
	RoleAdmin    = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Facility status
const (
	FacilityStatusAvailable        = 1
	FacilityStatusUnderMaintenance = 2
	FacilityStatusUnavailable      = 3
)

// Facility issue status
const (
	IssueStatusPending     = 0
	IssueStatusRoomChanged = 1
	IssueStatusRejected    = 2
)

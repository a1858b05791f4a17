package constants

// User roles as stored in the identity directory.
const (
	RoleStudent    = "student"
	RoleLecturer   = "lecturer"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

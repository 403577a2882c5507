package domain

// Role enumerates employee roles known to the chatbot.
type Role string

const (
	RoleDispatcher        Role = "dispatcher"
	RoleComplianceOfficer Role = "compliance_officer"
	RoleWarehouseManager  Role = "warehouse_manager"
	RoleAdmin             Role = "admin"
	RoleDriver            Role = "driver"
	RoleUnknown           Role = "unknown"
)

// ParseRole maps a raw string onto a known role, falling back to RoleUnknown.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleDispatcher, RoleComplianceOfficer, RoleWarehouseManager, RoleAdmin, RoleDriver:
		return Role(raw)
	default:
		return RoleUnknown
	}
}

// User is the domain model for an employee in the static directory.
type User struct {
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
	Disabled     bool
}

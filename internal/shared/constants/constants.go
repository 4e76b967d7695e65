package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Predefined role names seeded at install time
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleAgent      = "agent"
	RoleCustomer   = "customer"

	// Cache key prefixes
	CacheKeyRoleMenuPrefix = "rolemenu:"

	// Ticket number prefix, e.g. TKT-20260830-0001
	TicketNumberPrefix = "TKT"
)

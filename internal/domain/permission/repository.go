package permission

import "context"

type RoleRepository interface {
	Save(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error

	// Delete removes a role. Predefined roles and roles still
	// referenced by accounts are protected.
	Delete(ctx context.Context, roleID uint) error

	GetByID(ctx context.Context, roleID uint) (*Role, error)

	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
}

// GrantSpec is one entry of a bulk role-grant replacement.
type GrantSpec struct {
	MenuID       uint
	Capabilities Capabilities
}

// GrantRepository is the permission store: pure data access over role
// and user grants, no decision logic.
type GrantRepository interface {
	// GetRoleGrant returns nil without error when no grant exists.
	GetRoleGrant(ctx context.Context, roleID, menuID uint) (*RoleGrant, error)
	ListRoleGrants(ctx context.Context, roleID uint) ([]*RoleGrant, error)

	// ReplaceRoleGrants atomically deletes every grant of the role and
	// inserts the new set. A reader never observes the role with zero
	// grants mid-update. Returns the number of grants created.
	ReplaceRoleGrants(ctx context.Context, roleID uint, specs []GrantSpec) (int, error)

	// GetUserGrant returns nil without error when no override exists.
	GetUserGrant(ctx context.Context, accountID, menuID uint) (*UserGrant, error)
	ListUserGrants(ctx context.Context, accountID uint) ([]*UserGrant, error)
	SaveUserGrant(ctx context.Context, grant *UserGrant) error
	DeleteUserGrant(ctx context.Context, accountID, menuID uint) error

	// CountByMenu reports how many grants of either kind reference the
	// menu, for protect-on-delete checks.
	CountByMenu(ctx context.Context, menuID uint) (int64, error)
}

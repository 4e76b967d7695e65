package permission

import (
	"fmt"
	"time"
)

// RoleGrant attaches capabilities to a (role, menu) pair. Grants for a
// role are only ever replaced as a set, never edited row by row.
type RoleGrant struct {
	id           uint
	roleID       uint
	menuID       uint
	capabilities Capabilities
	createdAt    time.Time
}

func NewRoleGrant(roleID, menuID uint, capabilities Capabilities) (*RoleGrant, error) {
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}
	if menuID == 0 {
		return nil, fmt.Errorf("menu ID is required")
	}
	if capabilities.IsZero() {
		return nil, fmt.Errorf("at least one capability must be enabled")
	}

	return &RoleGrant{
		roleID:       roleID,
		menuID:       menuID,
		capabilities: capabilities,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructRoleGrant(id, roleID, menuID uint, capabilities Capabilities, createdAt time.Time) (*RoleGrant, error) {
	if id == 0 {
		return nil, fmt.Errorf("grant ID cannot be zero")
	}
	return &RoleGrant{
		id:           id,
		roleID:       roleID,
		menuID:       menuID,
		capabilities: capabilities,
		createdAt:    createdAt,
	}, nil
}

func (g *RoleGrant) ID() uint {
	return g.id
}

func (g *RoleGrant) RoleID() uint {
	return g.roleID
}

func (g *RoleGrant) MenuID() uint {
	return g.menuID
}

func (g *RoleGrant) Capabilities() Capabilities {
	return g.capabilities
}

func (g *RoleGrant) CreatedAt() time.Time {
	return g.createdAt
}

// UserGrant is a per-account override. When present for a menu it fully
// shadows any role grant for that account and menu, in either
// direction.
type UserGrant struct {
	id           uint
	accountID    uint
	menuID       uint
	capabilities Capabilities
	assignedByID *uint
	assignedAt   time.Time
}

func NewUserGrant(accountID, menuID uint, capabilities Capabilities, assignedByID *uint) (*UserGrant, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if menuID == 0 {
		return nil, fmt.Errorf("menu ID is required")
	}
	if capabilities.IsZero() {
		capabilities = DefaultCapabilities()
	}

	return &UserGrant{
		accountID:    accountID,
		menuID:       menuID,
		capabilities: capabilities,
		assignedByID: assignedByID,
		assignedAt:   time.Now(),
	}, nil
}

func ReconstructUserGrant(id, accountID, menuID uint, capabilities Capabilities, assignedByID *uint, assignedAt time.Time) (*UserGrant, error) {
	if id == 0 {
		return nil, fmt.Errorf("grant ID cannot be zero")
	}
	return &UserGrant{
		id:           id,
		accountID:    accountID,
		menuID:       menuID,
		capabilities: capabilities,
		assignedByID: assignedByID,
		assignedAt:   assignedAt,
	}, nil
}

func (g *UserGrant) ID() uint {
	return g.id
}

func (g *UserGrant) AccountID() uint {
	return g.accountID
}

func (g *UserGrant) MenuID() uint {
	return g.menuID
}

func (g *UserGrant) Capabilities() Capabilities {
	return g.capabilities
}

func (g *UserGrant) AssignedByID() *uint {
	return g.assignedByID
}

func (g *UserGrant) AssignedAt() time.Time {
	return g.assignedAt
}

func (g *UserGrant) SetCapabilities(capabilities Capabilities) error {
	if capabilities.IsZero() {
		return fmt.Errorf("at least one capability must be enabled")
	}
	g.capabilities = capabilities
	return nil
}

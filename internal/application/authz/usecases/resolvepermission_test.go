package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
)

var fixedTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func reconstructMenu(t *testing.T, id uint, name, path string, parentID *uint, depth int) *menu.Menu {
	t.Helper()
	m, err := menu.ReconstructMenu(id, name, path, "", "", "", parentID, true, 0, depth, fixedTime, fixedTime)
	require.NoError(t, err)
	return m
}

func roleGrant(t *testing.T, roleID, menuID uint, caps permission.Capabilities) *permission.RoleGrant {
	t.Helper()
	g, err := permission.ReconstructRoleGrant(1, roleID, menuID, caps, fixedTime)
	require.NoError(t, err)
	return g
}

func userGrant(t *testing.T, accountID, menuID uint, caps permission.Capabilities) *permission.UserGrant {
	t.Helper()
	g, err := permission.ReconstructUserGrant(1, accountID, menuID, caps, nil, fixedTime)
	require.NoError(t, err)
	return g
}

func principal(accountID uint, roleID *uint) account.Principal {
	return account.Principal{AccountID: accountID, RoleID: roleID}
}

func TestResolvePermission_Superuser(t *testing.T) {
	uc := NewResolvePermissionUseCase(&mockMenuRepository{}, &mockGrantRepository{}, newTestLogger())

	decision, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: account.Principal{AccountID: 1, IsSuperuser: true},
		Action:    "delete",
		MenuPath:  "/anything/",
	})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, ReasonSuperuser, decision.Reason)
}

func TestResolvePermission_UnknownResourceDenies(t *testing.T) {
	menuRepo := &mockMenuRepository{
		GetByPathFunc: func(ctx context.Context, path string) (*menu.Menu, error) {
			return nil, nil
		},
	}
	uc := NewResolvePermissionUseCase(menuRepo, &mockGrantRepository{}, newTestLogger())

	roleID := uint(2)
	decision, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, &roleID),
		Action:    "view",
		MenuPath:  "/nope/",
	})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonUnknownResource, decision.Reason)
}

func TestResolvePermission_UnknownActionDenies(t *testing.T) {
	uc := NewResolvePermissionUseCase(&mockMenuRepository{}, &mockGrantRepository{}, newTestLogger())

	decision, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, nil),
		Action:    "publish",
		MenuPath:  "/tickets/",
	})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonUnknownAction, decision.Reason)
}

func TestResolvePermission_RoleGrantScenario(t *testing.T) {
	// role "agent" may view but not create /tickets/; account has no
	// override.
	target := reconstructMenu(t, 10, "Tickets", "/tickets/", nil, 0)
	roleID := uint(3)

	menuRepo := &mockMenuRepository{
		GetByPathFunc: func(ctx context.Context, path string) (*menu.Menu, error) {
			if path == "/tickets/" {
				return target, nil
			}
			return nil, nil
		},
	}
	grantRepo := &mockGrantRepository{
		GetRoleGrantFunc: func(ctx context.Context, gotRoleID, menuID uint) (*permission.RoleGrant, error) {
			if gotRoleID == roleID && menuID == target.ID() {
				return roleGrant(t, roleID, target.ID(), permission.Capabilities{View: true}), nil
			}
			return nil, nil
		},
	}
	uc := NewResolvePermissionUseCase(menuRepo, grantRepo, newTestLogger())

	deny, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, &roleID), Action: "create", MenuPath: "/tickets/",
	})
	require.NoError(t, err)
	assert.False(t, deny.Allowed)
	assert.Equal(t, ReasonRoleGrant, deny.Reason)

	allow, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, &roleID), Action: "list", MenuPath: "/tickets/",
	})
	require.NoError(t, err)
	assert.True(t, allow.Allowed)
	assert.Equal(t, ReasonRoleGrant, allow.Reason)
}

func TestResolvePermission_UserGrantShadowsRole(t *testing.T) {
	// The override is more restrictive than the role grant; the role
	// grant must never be consulted once an override exists.
	target := reconstructMenu(t, 10, "Tickets", "/tickets/", nil, 0)
	roleID := uint(3)

	roleConsulted := false
	menuRepo := &mockMenuRepository{
		GetByPathFunc: func(ctx context.Context, path string) (*menu.Menu, error) {
			return target, nil
		},
	}
	grantRepo := &mockGrantRepository{
		GetUserGrantFunc: func(ctx context.Context, accountID, menuID uint) (*permission.UserGrant, error) {
			return userGrant(t, accountID, menuID, permission.Capabilities{View: true}), nil
		},
		GetRoleGrantFunc: func(ctx context.Context, gotRoleID, menuID uint) (*permission.RoleGrant, error) {
			roleConsulted = true
			return roleGrant(t, gotRoleID, menuID, permission.FullCapabilities()), nil
		},
	}
	uc := NewResolvePermissionUseCase(menuRepo, grantRepo, newTestLogger())

	decision, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, &roleID), Action: "delete", MenuPath: "/tickets/",
	})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonUserGrant, decision.Reason)
	assert.False(t, roleConsulted)
}

func TestResolvePermission_NoRoleNoGrantDenies(t *testing.T) {
	target := reconstructMenu(t, 10, "Tickets", "/tickets/", nil, 0)
	menuRepo := &mockMenuRepository{
		GetByPathFunc: func(ctx context.Context, path string) (*menu.Menu, error) {
			return target, nil
		},
	}
	uc := NewResolvePermissionUseCase(menuRepo, &mockGrantRepository{}, newTestLogger())

	decision, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, nil), Action: "view", MenuPath: "/tickets/",
	})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNoGrant, decision.Reason)
}

func TestResolvePermission_StoreErrorPropagates(t *testing.T) {
	target := reconstructMenu(t, 10, "Tickets", "/tickets/", nil, 0)
	roleID := uint(3)
	menuRepo := &mockMenuRepository{
		GetByPathFunc: func(ctx context.Context, path string) (*menu.Menu, error) {
			return target, nil
		},
	}
	grantRepo := &mockGrantRepository{
		GetUserGrantFunc: func(ctx context.Context, accountID, menuID uint) (*permission.UserGrant, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}
	uc := NewResolvePermissionUseCase(menuRepo, grantRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), ResolvePermissionCommand{
		Principal: principal(1, &roleID), Action: "view", MenuPath: "/tickets/",
	})
	assert.ErrorContains(t, err, "failed to get user grant")
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
)

// fixture: Dashboard(1), Tickets(2, group) -> Open(3), Closed(4),
// Admin(5, group) -> Roles(6)
func menuFixture(t *testing.T) []*menu.Menu {
	t.Helper()
	two := uint(2)
	five := uint(5)
	return []*menu.Menu{
		reconstructMenu(t, 1, "Dashboard", "/dashboard/", nil, 0),
		reconstructMenu(t, 2, "Tickets", "/tickets/", nil, 0),
		reconstructMenu(t, 3, "Open", "/tickets/open/", &two, 1),
		reconstructMenu(t, 4, "Closed", "/tickets/closed/", &two, 1),
		reconstructMenu(t, 5, "Admin", "/admin/", nil, 0),
		reconstructMenu(t, 6, "Roles", "/admin/roles/", &five, 1),
	}
}

func fixtureMenuRepo(t *testing.T) *mockMenuRepository {
	t.Helper()
	return &mockMenuRepository{
		ListFunc: func(ctx context.Context, onlyVisible bool) ([]*menu.Menu, error) {
			require.True(t, onlyVisible)
			return menuFixture(t), nil
		},
	}
}

func collectPaths(tree []*MenuNode) []string {
	var paths []string
	var walk func(nodes []*MenuNode)
	walk = func(nodes []*MenuNode) {
		for _, n := range nodes {
			paths = append(paths, n.Path)
			walk(n.Children)
		}
	}
	walk(tree)
	return paths
}

func TestAssembleMenu_SuperuserFullTree(t *testing.T) {
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), &mockGrantRepository{}, nil, time.Hour, newTestLogger())

	result, err := uc.Execute(context.Background(), AssembleMenuCommand{
		Principal: account.Principal{AccountID: 1, IsSuperuser: true},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"/dashboard/", "/tickets/", "/tickets/open/", "/tickets/closed/", "/admin/", "/admin/roles/"},
		collectPaths(result.Tree))

	// dashboard is a leaf with all capabilities; tickets is a group
	// without any
	for _, node := range result.Tree {
		switch node.Path {
		case "/dashboard/":
			require.NotNil(t, node.Capabilities)
			assert.Equal(t, permission.FullCapabilities(), *node.Capabilities)
			assert.False(t, node.IsGroup)
		case "/tickets/":
			assert.Nil(t, node.Capabilities)
			assert.True(t, node.IsGroup)
			assert.Len(t, node.Children, 2)
		}
	}
}

func TestAssembleMenu_UserGrantsRestrictAndExpandParents(t *testing.T) {
	grantRepo := &mockGrantRepository{
		ListUserGrantsFunc: func(ctx context.Context, accountID uint) ([]*permission.UserGrant, error) {
			return []*permission.UserGrant{
				userGrant(t, accountID, 3, permission.Capabilities{View: true, Update: true}),
			}, nil
		},
	}
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), grantRepo, nil, time.Hour, newTestLogger())

	roleID := uint(2)
	result, err := uc.Execute(context.Background(), AssembleMenuCommand{
		Principal: principal(1, &roleID),
	})

	require.NoError(t, err)
	// only the granted menu plus its parent chain; role grants
	// never consulted
	assert.Equal(t, []string{"/tickets/", "/tickets/open/"}, collectPaths(result.Tree))

	group := result.Tree[0]
	assert.True(t, group.IsGroup)
	assert.Nil(t, group.Capabilities)

	leaf := group.Children[0]
	require.NotNil(t, leaf.Capabilities)
	assert.True(t, leaf.Capabilities.View)
	assert.True(t, leaf.Capabilities.Update)
	assert.False(t, leaf.Capabilities.Create)
}

func TestAssembleMenu_RoleFallback(t *testing.T) {
	roleID := uint(7)
	grantRepo := &mockGrantRepository{
		ListRoleGrantsFunc: func(ctx context.Context, gotRoleID uint) ([]*permission.RoleGrant, error) {
			require.Equal(t, roleID, gotRoleID)
			return []*permission.RoleGrant{
				roleGrant(t, gotRoleID, 1, permission.Capabilities{View: true}),
				roleGrant(t, gotRoleID, 2, permission.Capabilities{View: true}),
				roleGrant(t, gotRoleID, 4, permission.Capabilities{View: true, Create: true}),
			}, nil
		},
	}
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), grantRepo, nil, time.Hour, newTestLogger())

	result, err := uc.Execute(context.Background(), AssembleMenuCommand{
		Principal: principal(1, &roleID),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/dashboard/", "/tickets/", "/tickets/closed/"}, collectPaths(result.Tree))
}

func TestAssembleMenu_RoleTreeHoldsGrantedMenusOnly(t *testing.T) {
	// Unlike user overrides, role grants never pull in ungranted
	// ancestors: Closed(4) under the ungranted Tickets(2) group
	// stays out of the tree entirely.
	roleID := uint(7)
	grantRepo := &mockGrantRepository{
		ListRoleGrantsFunc: func(ctx context.Context, gotRoleID uint) ([]*permission.RoleGrant, error) {
			return []*permission.RoleGrant{
				roleGrant(t, gotRoleID, 1, permission.Capabilities{View: true}),
				roleGrant(t, gotRoleID, 4, permission.Capabilities{View: true}),
			}, nil
		},
	}
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), grantRepo, nil, time.Hour, newTestLogger())

	result, err := uc.Execute(context.Background(), AssembleMenuCommand{
		Principal: principal(1, &roleID),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/dashboard/"}, collectPaths(result.Tree))
}

func TestAssembleMenu_NoGrantsAccessDenied(t *testing.T) {
	roleID := uint(7)
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), &mockGrantRepository{}, nil, time.Hour, newTestLogger())

	_, err := uc.Execute(context.Background(), AssembleMenuCommand{
		Principal: principal(1, &roleID),
	})
	assert.True(t, errors.IsAccessDeniedError(err))

	_, err = uc.Execute(context.Background(), AssembleMenuCommand{
		Principal: principal(1, nil),
	})
	assert.True(t, errors.IsAccessDeniedError(err))
}

func TestAssembleMenu_RoleTreeCache(t *testing.T) {
	roleID := uint(7)
	listCalls := 0
	grantRepo := &mockGrantRepository{
		ListRoleGrantsFunc: func(ctx context.Context, gotRoleID uint) ([]*permission.RoleGrant, error) {
			listCalls++
			return []*permission.RoleGrant{
				roleGrant(t, gotRoleID, 1, permission.Capabilities{View: true}),
			}, nil
		},
	}

	store := make(map[uint][]*MenuNode)
	cache := &mockMenuTreeCache{
		GetFunc: func(ctx context.Context, gotRoleID uint) ([]*MenuNode, bool, error) {
			tree, ok := store[gotRoleID]
			return tree, ok, nil
		},
		SetFunc: func(ctx context.Context, gotRoleID uint, tree []*MenuNode, ttl time.Duration) error {
			assert.Equal(t, time.Hour, ttl)
			store[gotRoleID] = tree
			return nil
		},
	}
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), grantRepo, cache, time.Hour, newTestLogger())

	cmd := AssembleMenuCommand{Principal: principal(1, &roleID)}
	first, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, listCalls)
	assert.Equal(t, collectPaths(first.Tree), collectPaths(second.Tree))
}

func TestAssembleMenu_UserTreeNeverCached(t *testing.T) {
	grantRepo := &mockGrantRepository{
		ListUserGrantsFunc: func(ctx context.Context, accountID uint) ([]*permission.UserGrant, error) {
			return []*permission.UserGrant{
				userGrant(t, accountID, 1, permission.Capabilities{View: true}),
			}, nil
		},
	}
	cache := &mockMenuTreeCache{
		GetFunc: func(ctx context.Context, roleID uint) ([]*MenuNode, bool, error) {
			t.Fatal("cache consulted for a user-override tree")
			return nil, false, nil
		},
		SetFunc: func(ctx context.Context, roleID uint, tree []*MenuNode, ttl time.Duration) error {
			t.Fatal("cache written for a user-override tree")
			return nil
		},
	}
	uc := NewAssembleMenuUseCase(fixtureMenuRepo(t), grantRepo, cache, time.Hour, newTestLogger())

	roleID := uint(2)
	_, err := uc.Execute(context.Background(), AssembleMenuCommand{Principal: principal(1, &roleID)})
	require.NoError(t, err)
}

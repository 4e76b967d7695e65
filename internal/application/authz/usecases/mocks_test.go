package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/logger"
)

type mockMenuRepository struct {
	SaveFunc         func(ctx context.Context, m *menu.Menu) error
	UpdateFunc       func(ctx context.Context, m *menu.Menu) error
	UpdateParentFunc func(ctx context.Context, m *menu.Menu, changed []*menu.Menu) error
	DeleteFunc       func(ctx context.Context, menuID uint) error
	GetByIDFunc      func(ctx context.Context, menuID uint) (*menu.Menu, error)
	GetByPathFunc    func(ctx context.Context, path string) (*menu.Menu, error)
	ListFunc         func(ctx context.Context, onlyVisible bool) ([]*menu.Menu, error)
	ListChildrenFunc func(ctx context.Context, parentID uint) ([]*menu.Menu, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	HasChildrenFunc  func(ctx context.Context, menuID uint) (bool, error)
	DeleteAllFunc    func(ctx context.Context) (int64, error)
}

func (m *mockMenuRepository) Save(ctx context.Context, mn *menu.Menu) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, mn)
	}
	return nil
}

func (m *mockMenuRepository) Update(ctx context.Context, mn *menu.Menu) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mn)
	}
	return nil
}

func (m *mockMenuRepository) UpdateParent(ctx context.Context, mn *menu.Menu, changed []*menu.Menu) error {
	if m.UpdateParentFunc != nil {
		return m.UpdateParentFunc(ctx, mn, changed)
	}
	return nil
}

func (m *mockMenuRepository) Delete(ctx context.Context, menuID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, menuID)
	}
	return nil
}

func (m *mockMenuRepository) GetByID(ctx context.Context, menuID uint) (*menu.Menu, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, menuID)
	}
	return nil, nil
}

func (m *mockMenuRepository) GetByPath(ctx context.Context, path string) (*menu.Menu, error) {
	if m.GetByPathFunc != nil {
		return m.GetByPathFunc(ctx, path)
	}
	return nil, nil
}

func (m *mockMenuRepository) List(ctx context.Context, onlyVisible bool) ([]*menu.Menu, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, onlyVisible)
	}
	return nil, nil
}

func (m *mockMenuRepository) ListChildren(ctx context.Context, parentID uint) ([]*menu.Menu, error) {
	if m.ListChildrenFunc != nil {
		return m.ListChildrenFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *mockMenuRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *mockMenuRepository) HasChildren(ctx context.Context, menuID uint) (bool, error) {
	if m.HasChildrenFunc != nil {
		return m.HasChildrenFunc(ctx, menuID)
	}
	return false, nil
}

func (m *mockMenuRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

type mockGrantRepository struct {
	GetRoleGrantFunc      func(ctx context.Context, roleID, menuID uint) (*permission.RoleGrant, error)
	ListRoleGrantsFunc    func(ctx context.Context, roleID uint) ([]*permission.RoleGrant, error)
	ReplaceRoleGrantsFunc func(ctx context.Context, roleID uint, specs []permission.GrantSpec) (int, error)
	GetUserGrantFunc      func(ctx context.Context, accountID, menuID uint) (*permission.UserGrant, error)
	ListUserGrantsFunc    func(ctx context.Context, accountID uint) ([]*permission.UserGrant, error)
	SaveUserGrantFunc     func(ctx context.Context, grant *permission.UserGrant) error
	DeleteUserGrantFunc   func(ctx context.Context, accountID, menuID uint) error
	CountByMenuFunc       func(ctx context.Context, menuID uint) (int64, error)
}

func (m *mockGrantRepository) GetRoleGrant(ctx context.Context, roleID, menuID uint) (*permission.RoleGrant, error) {
	if m.GetRoleGrantFunc != nil {
		return m.GetRoleGrantFunc(ctx, roleID, menuID)
	}
	return nil, nil
}

func (m *mockGrantRepository) ListRoleGrants(ctx context.Context, roleID uint) ([]*permission.RoleGrant, error) {
	if m.ListRoleGrantsFunc != nil {
		return m.ListRoleGrantsFunc(ctx, roleID)
	}
	return nil, nil
}

func (m *mockGrantRepository) ReplaceRoleGrants(ctx context.Context, roleID uint, specs []permission.GrantSpec) (int, error) {
	if m.ReplaceRoleGrantsFunc != nil {
		return m.ReplaceRoleGrantsFunc(ctx, roleID, specs)
	}
	return 0, nil
}

func (m *mockGrantRepository) GetUserGrant(ctx context.Context, accountID, menuID uint) (*permission.UserGrant, error) {
	if m.GetUserGrantFunc != nil {
		return m.GetUserGrantFunc(ctx, accountID, menuID)
	}
	return nil, nil
}

func (m *mockGrantRepository) ListUserGrants(ctx context.Context, accountID uint) ([]*permission.UserGrant, error) {
	if m.ListUserGrantsFunc != nil {
		return m.ListUserGrantsFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockGrantRepository) SaveUserGrant(ctx context.Context, grant *permission.UserGrant) error {
	if m.SaveUserGrantFunc != nil {
		return m.SaveUserGrantFunc(ctx, grant)
	}
	return nil
}

func (m *mockGrantRepository) DeleteUserGrant(ctx context.Context, accountID, menuID uint) error {
	if m.DeleteUserGrantFunc != nil {
		return m.DeleteUserGrantFunc(ctx, accountID, menuID)
	}
	return nil
}

func (m *mockGrantRepository) CountByMenu(ctx context.Context, menuID uint) (int64, error) {
	if m.CountByMenuFunc != nil {
		return m.CountByMenuFunc(ctx, menuID)
	}
	return 0, nil
}

type mockRoleRepository struct {
	SaveFunc      func(ctx context.Context, role *permission.Role) error
	UpdateFunc    func(ctx context.Context, role *permission.Role) error
	DeleteFunc    func(ctx context.Context, roleID uint) error
	GetByIDFunc   func(ctx context.Context, roleID uint) (*permission.Role, error)
	GetByNameFunc func(ctx context.Context, name string) (*permission.Role, error)
	ListFunc      func(ctx context.Context) ([]*permission.Role, error)
}

func (m *mockRoleRepository) Save(ctx context.Context, role *permission.Role) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, role)
	}
	return nil
}

func (m *mockRoleRepository) Update(ctx context.Context, role *permission.Role) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, role)
	}
	return nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, roleID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, roleID)
	}
	return nil
}

func (m *mockRoleRepository) GetByID(ctx context.Context, roleID uint) (*permission.Role, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, roleID)
	}
	return nil, nil
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*permission.Role, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRoleRepository) List(ctx context.Context) ([]*permission.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockAccountRepository struct {
	SaveFunc          func(ctx context.Context, a *account.Account) error
	UpdateFunc        func(ctx context.Context, a *account.Account) error
	DeleteFunc        func(ctx context.Context, accountID uint) error
	GetByIDFunc       func(ctx context.Context, accountID uint) (*account.Account, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*account.Account, error)
	ListFunc          func(ctx context.Context) ([]*account.Account, error)
	CountByRoleFunc   func(ctx context.Context, roleID uint) (int64, error)
	GetSuperuserFunc  func(ctx context.Context) (*account.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, a *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) Delete(ctx context.Context, accountID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, accountID)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, accountID uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAccountRepository) CountByRole(ctx context.Context, roleID uint) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, roleID)
	}
	return 0, nil
}

func (m *mockAccountRepository) GetSuperuser(ctx context.Context) (*account.Account, error) {
	if m.GetSuperuserFunc != nil {
		return m.GetSuperuserFunc(ctx)
	}
	return nil, nil
}

type mockMenuTreeCache struct {
	GetFunc       func(ctx context.Context, roleID uint) ([]*MenuNode, bool, error)
	SetFunc       func(ctx context.Context, roleID uint, tree []*MenuNode, ttl time.Duration) error
	DeleteFunc    func(ctx context.Context, roleID uint) error
	DeleteAllFunc func(ctx context.Context) error
}

func (m *mockMenuTreeCache) Get(ctx context.Context, roleID uint) ([]*MenuNode, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, roleID)
	}
	return nil, false, nil
}

func (m *mockMenuTreeCache) Set(ctx context.Context, roleID uint, tree []*MenuNode, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, roleID, tree, ttl)
	}
	return nil
}

func (m *mockMenuTreeCache) Delete(ctx context.Context, roleID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, roleID)
	}
	return nil
}

func (m *mockMenuTreeCache) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

type nopLogger struct{}

func newTestLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

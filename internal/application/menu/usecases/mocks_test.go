package usecases

import (
	"context"

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

type mockMenuTreeCache struct {
	DeleteAllFunc func(ctx context.Context) error
	Cleared       int
}

func (m *mockMenuTreeCache) DeleteAll(ctx context.Context) error {
	m.Cleared++
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

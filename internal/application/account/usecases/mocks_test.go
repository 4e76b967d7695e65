package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/logger"
)

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

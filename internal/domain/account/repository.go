package account

import "context"

type Repository interface {
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, accountID uint) error

	GetByID(ctx context.Context, accountID uint) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)

	// CountByRole supports protect-on-delete for roles.
	CountByRole(ctx context.Context, roleID uint) (int64, error)
	GetSuperuser(ctx context.Context) (*Account, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Select("username", "email", "phone_number", "address", "role_id", "is_superuser").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	return nil
}

// Delete removes an account together with its grant overrides.
func (r *AccountRepository) Delete(ctx context.Context, accountID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("account_id = ?", accountID).
			Delete(&models.UserGrantModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete account grants: %w", err)
		}

		result := tx.Delete(&models.AccountModel{}, accountID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("account %d not found", accountID)
		}

		return nil
	})
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uint) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var accountModels []*models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("username ASC").Find(&accountModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return r.mapper.ToDomainList(accountModels)
}

func (r *AccountRepository) CountByRole(ctx context.Context, roleID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AccountModel{}).
		Where("role_id = ?", roleID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts by role: %w", err)
	}

	return count, nil
}

func (r *AccountRepository) GetSuperuser(ctx context.Context) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_superuser = ?", true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get superuser: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

type GrantRepository struct {
	db     *gorm.DB
	mapper mappers.PermissionMapper
}

func NewGrantRepository(db *gorm.DB) *GrantRepository {
	return &GrantRepository{
		db:     db,
		mapper: mappers.NewPermissionMapper(),
	}
}

func (r *GrantRepository) GetRoleGrant(ctx context.Context, roleID, menuID uint) (*permission.RoleGrant, error) {
	var model models.RoleGrantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role_id = ? AND menu_id = ?", roleID, menuID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role grant: %w", err)
	}

	return r.mapper.RoleGrantToDomain(&model)
}

func (r *GrantRepository) ListRoleGrants(ctx context.Context, roleID uint) ([]*permission.RoleGrant, error) {
	var grantModels []*models.RoleGrantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role_id = ?", roleID).
		Order("menu_id ASC").
		Find(&grantModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list role grants: %w", err)
	}

	grants := make([]*permission.RoleGrant, 0, len(grantModels))
	for _, model := range grantModels {
		g, err := r.mapper.RoleGrantToDomain(model)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, nil
}

// ReplaceRoleGrants deletes the role's grants and inserts the new set
// in one transaction, so a concurrent reader sees either the old set
// or the new one.
func (r *GrantRepository) ReplaceRoleGrants(ctx context.Context, roleID uint, specs []permission.GrantSpec) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int
	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("role_id = ?", roleID).
			Delete(&models.RoleGrantModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete role grants: %w", err)
		}

		grantModels := make([]*models.RoleGrantModel, 0, len(specs))
		for _, spec := range specs {
			grantModels = append(grantModels, &models.RoleGrantModel{
				RoleID:    roleID,
				MenuID:    spec.MenuID,
				CanCreate: spec.Capabilities.Create,
				CanView:   spec.Capabilities.View,
				CanUpdate: spec.Capabilities.Update,
				CanDelete: spec.Capabilities.Delete,
			})
		}

		if len(grantModels) > 0 {
			if err := tx.Create(&grantModels).Error; err != nil {
				return fmt.Errorf("failed to insert role grants: %w", err)
			}
		}

		count = len(grantModels)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GrantRepository) GetUserGrant(ctx context.Context, accountID, menuID uint) (*permission.UserGrant, error) {
	var model models.UserGrantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("account_id = ? AND menu_id = ?", accountID, menuID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user grant: %w", err)
	}

	return r.mapper.UserGrantToDomain(&model)
}

func (r *GrantRepository) ListUserGrants(ctx context.Context, accountID uint) ([]*permission.UserGrant, error) {
	var grantModels []*models.UserGrantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("account_id = ?", accountID).
		Order("menu_id ASC").
		Find(&grantModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list user grants: %w", err)
	}

	grants := make([]*permission.UserGrant, 0, len(grantModels))
	for _, model := range grantModels {
		g, err := r.mapper.UserGrantToDomain(model)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, nil
}

// SaveUserGrant upserts on the (account, menu) pair so repeated saves
// overwrite the capability flags instead of failing on the unique
// index.
func (r *GrantRepository) SaveUserGrant(ctx context.Context, grant *permission.UserGrant) error {
	model := r.mapper.UserGrantToModel(grant)
	tx := db.GetTxFromContext(ctx, r.db)

	var existing models.UserGrantModel
	err := tx.
		Where("account_id = ? AND menu_id = ?", model.AccountID, model.MenuID).
		First(&existing).Error
	switch {
	case err == nil:
		if err := tx.
			Model(&models.UserGrantModel{}).
			Where("id = ?", existing.ID).
			Select("can_create", "can_view", "can_update", "can_delete", "assigned_by_id").
			Updates(model).Error; err != nil {
			return fmt.Errorf("failed to update user grant: %w", err)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save user grant: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to check user grant: %w", err)
	}
}

func (r *GrantRepository) DeleteUserGrant(ctx context.Context, accountID, menuID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("account_id = ? AND menu_id = ?", accountID, menuID).
		Delete(&models.UserGrantModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user grant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user grant not found for account %d menu %d", accountID, menuID)
	}

	return nil
}

func (r *GrantRepository) CountByMenu(ctx context.Context, menuID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var roleCount int64
	if err := tx.
		Model(&models.RoleGrantModel{}).
		Where("menu_id = ?", menuID).
		Count(&roleCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count role grants: %w", err)
	}

	var userCount int64
	if err := tx.
		Model(&models.UserGrantModel{}).
		Where("menu_id = ?", menuID).
		Count(&userCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count user grants: %w", err)
	}

	return roleCount + userCount, nil
}

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

type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.PermissionMapper
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		db:     db,
		mapper: mappers.NewPermissionMapper(),
	}
}

func (r *RoleRepository) Save(ctx context.Context, role *permission.Role) error {
	model := r.mapper.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save role: %w", err)
	}

	return role.SetID(model.ID)
}

func (r *RoleRepository) Update(ctx context.Context, role *permission.Role) error {
	model := r.mapper.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RoleModel{}).
		Where("id = ?", model.ID).
		Select("name", "is_predefined").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}

	return nil
}

// Delete removes a role. Predefined roles, roles still assigned to
// accounts and roles with grants are protected.
func (r *RoleRepository) Delete(ctx context.Context, roleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var model models.RoleModel
		if err := tx.First(&model, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("role %d not found", roleID)
			}
			return fmt.Errorf("failed to get role: %w", err)
		}
		if model.IsPredefined {
			return fmt.Errorf("role %q is predefined and cannot be deleted", model.Name)
		}

		var accounts int64
		if err := tx.
			Model(&models.AccountModel{}).
			Where("role_id = ?", roleID).
			Count(&accounts).Error; err != nil {
			return fmt.Errorf("failed to count role accounts: %w", err)
		}
		if accounts > 0 {
			return fmt.Errorf("role %q is still assigned to %d accounts", model.Name, accounts)
		}

		if err := tx.
			Where("role_id = ?", roleID).
			Delete(&models.RoleGrantModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete role grants: %w", err)
		}

		if err := tx.Delete(&models.RoleModel{}, roleID).Error; err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}

		return nil
	})
}

func (r *RoleRepository) GetByID(ctx context.Context, roleID uint) (*permission.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*permission.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}

func (r *RoleRepository) List(ctx context.Context) ([]*permission.Role, error) {
	var roleModels []*models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*permission.Role, 0, len(roleModels))
	for _, model := range roleModels {
		role, err := r.mapper.RoleToDomain(model)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

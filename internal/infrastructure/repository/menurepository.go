package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

type MenuRepository struct {
	db     *gorm.DB
	mapper mappers.MenuMapper
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{
		db:     db,
		mapper: mappers.NewMenuMapper(),
	}
}

func (r *MenuRepository) Save(ctx context.Context, m *menu.Menu) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MenuRepository) Update(ctx context.Context, m *menu.Menu) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MenuModel{}).
		Where("id = ?", model.ID).
		Select("name", "path", "create_path", "list_path", "icon", "parent_id",
			"is_visible", "display_order", "depth").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update menu: %w", result.Error)
	}

	return nil
}

// UpdateParent writes the re-parented menu and every descendant whose
// depth changed inside one transaction.
func (r *MenuRepository) UpdateParent(ctx context.Context, m *menu.Menu, changed []*menu.Menu) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.MenuModel{}).
			Where("id = ?", m.ID()).
			Select("parent_id", "depth").
			Updates(map[string]any{
				"parent_id": m.ParentID(),
				"depth":     m.Depth(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to re-parent menu: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("menu %d not found", m.ID())
		}

		for _, d := range changed {
			if d.ID() == m.ID() {
				continue
			}
			if err := tx.
				Model(&models.MenuModel{}).
				Where("id = ?", d.ID()).
				Update("depth", d.Depth()).Error; err != nil {
				return fmt.Errorf("failed to cascade depth for menu %d: %w", d.ID(), err)
			}
		}

		return nil
	})
}

func (r *MenuRepository) Delete(ctx context.Context, menuID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var children int64
		if err := tx.
			Model(&models.MenuModel{}).
			Where("parent_id = ?", menuID).
			Count(&children).Error; err != nil {
			return fmt.Errorf("failed to count children: %w", err)
		}
		if children > 0 {
			return fmt.Errorf("menu %d still has %d children", menuID, children)
		}

		result := tx.Delete(&models.MenuModel{}, menuID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete menu: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("menu %d not found", menuID)
		}

		return nil
	})
}

func (r *MenuRepository) GetByID(ctx context.Context, menuID uint) (*menu.Menu, error) {
	var model models.MenuModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MenuRepository) GetByPath(ctx context.Context, path string) (*menu.Menu, error) {
	var model models.MenuModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("path = ?", path).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu by path: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MenuRepository) List(ctx context.Context, onlyVisible bool) ([]*menu.Menu, error) {
	var menuModels []*models.MenuModel
	tx := db.GetTxFromContext(ctx, r.db).Scopes(db.SiblingOrder())

	if onlyVisible {
		tx = tx.Scopes(db.VisibleOnly())
	}

	if err := tx.Find(&menuModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	return r.mapper.ToDomainList(menuModels)
}

func (r *MenuRepository) ListChildren(ctx context.Context, parentID uint) ([]*menu.Menu, error) {
	var menuModels []*models.MenuModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_id = ?", parentID).
		Scopes(db.SiblingOrder()).
		Find(&menuModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return r.mapper.ToDomainList(menuModels)
}

func (r *MenuRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MenuModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check menu name: %w", err)
	}

	return count > 0, nil
}

func (r *MenuRepository) HasChildren(ctx context.Context, menuID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MenuModel{}).
		Where("parent_id = ?", menuID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count children: %w", err)
	}

	return count > 0, nil
}

func (r *MenuRepository) DeleteAll(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("1 = 1").Delete(&models.MenuModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete menus: %w", result.Error)
	}

	return result.RowsAffected, nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteMenuCommand struct {
	MenuID uint
}

// DeleteMenuUseCase removes a menu. Deletion is protected: menus with
// children or with grants still pointing at them are rejected rather
// than cascaded.
type DeleteMenuUseCase struct {
	menuRepo  menu.Repository
	grantRepo permission.GrantRepository
	cache     MenuTreeCache
	logger    logger.Interface
}

func NewDeleteMenuUseCase(menuRepo menu.Repository, grantRepo permission.GrantRepository, cache MenuTreeCache, logger logger.Interface) *DeleteMenuUseCase {
	return &DeleteMenuUseCase{menuRepo: menuRepo, grantRepo: grantRepo, cache: cache, logger: logger}
}

func (uc *DeleteMenuUseCase) Execute(ctx context.Context, cmd DeleteMenuCommand) error {
	m, err := uc.menuRepo.GetByID(ctx, cmd.MenuID)
	if err != nil {
		return fmt.Errorf("failed to get menu: %w", err)
	}
	if m == nil {
		return errors.NewNotFoundError(fmt.Sprintf("menu %d not found", cmd.MenuID))
	}

	hasChildren, err := uc.menuRepo.HasChildren(ctx, cmd.MenuID)
	if err != nil {
		return fmt.Errorf("failed to check menu children: %w", err)
	}
	if hasChildren {
		return errors.NewIntegrityError(fmt.Sprintf("menu %d still has child menus", cmd.MenuID))
	}

	grantCount, err := uc.grantRepo.CountByMenu(ctx, cmd.MenuID)
	if err != nil {
		return fmt.Errorf("failed to count menu grants: %w", err)
	}
	if grantCount > 0 {
		return errors.NewIntegrityError(fmt.Sprintf("menu %d is referenced by %d grants", cmd.MenuID, grantCount))
	}

	if err := uc.menuRepo.Delete(ctx, cmd.MenuID); err != nil {
		uc.logger.Errorw("failed to delete menu", "error", err, "menu_id", cmd.MenuID)
		return fmt.Errorf("failed to delete menu: %w", err)
	}

	if err := invalidateTrees(ctx, uc.cache); err != nil {
		uc.logger.Errorw("failed to invalidate menu tree cache", "error", err, "menu_id", cmd.MenuID)
		return fmt.Errorf("menu deleted but cache invalidation failed: %w", err)
	}

	uc.logger.Infow("menu deleted", "menu_id", cmd.MenuID, "path", m.Path())
	return nil
}

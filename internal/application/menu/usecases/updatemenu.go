package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateMenuCommand struct {
	MenuID       uint
	Name         *string
	CreatePath   *string
	ListPath     *string
	Icon         *string
	DisplayOrder *int
	Visible      *bool
}

type UpdateMenuResult struct {
	Menu *menu.Menu
}

type UpdateMenuUseCase struct {
	menuRepo menu.Repository
	cache    MenuTreeCache
	logger   logger.Interface
}

func NewUpdateMenuUseCase(menuRepo menu.Repository, cache MenuTreeCache, logger logger.Interface) *UpdateMenuUseCase {
	return &UpdateMenuUseCase{menuRepo: menuRepo, cache: cache, logger: logger}
}

func (uc *UpdateMenuUseCase) Execute(ctx context.Context, cmd UpdateMenuCommand) (*UpdateMenuResult, error) {
	m, err := uc.menuRepo.GetByID(ctx, cmd.MenuID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu %d not found", cmd.MenuID))
	}

	if cmd.Name != nil && *cmd.Name != m.Name() {
		exists, err := uc.menuRepo.ExistsByName(ctx, *cmd.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check menu name: %w", err)
		}
		if exists {
			return nil, errors.NewValidationError(fmt.Sprintf("menu name %q already exists", *cmd.Name))
		}
		if err := m.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.CreatePath != nil || cmd.ListPath != nil {
		createPath := m.CreatePath()
		listPath := m.ListPath()
		if cmd.CreatePath != nil {
			createPath = *cmd.CreatePath
		}
		if cmd.ListPath != nil {
			listPath = *cmd.ListPath
		}
		m.SetSubPaths(createPath, listPath)
	}

	if cmd.Icon != nil {
		m.SetIcon(*cmd.Icon)
	}
	if cmd.DisplayOrder != nil {
		if err := m.SetDisplayOrder(*cmd.DisplayOrder); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Visible != nil {
		if *cmd.Visible {
			m.Show()
		} else {
			m.Hide()
		}
	}

	if err := uc.menuRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update menu", "error", err, "menu_id", cmd.MenuID)
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}

	if err := invalidateTrees(ctx, uc.cache); err != nil {
		uc.logger.Errorw("failed to invalidate menu tree cache", "error", err, "menu_id", m.ID())
		return nil, fmt.Errorf("menu updated but cache invalidation failed: %w", err)
	}

	uc.logger.Infow("menu updated", "menu_id", m.ID())
	return &UpdateMenuResult{Menu: m}, nil
}

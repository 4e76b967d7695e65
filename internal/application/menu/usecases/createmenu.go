package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateMenuCommand struct {
	Name         string
	Path         string
	CreatePath   string
	ListPath     string
	Icon         string
	ParentID     *uint
	DisplayOrder int
}

type CreateMenuResult struct {
	Menu *menu.Menu
}

type CreateMenuUseCase struct {
	menuRepo menu.Repository
	logger   logger.Interface
}

func NewCreateMenuUseCase(menuRepo menu.Repository, logger logger.Interface) *CreateMenuUseCase {
	return &CreateMenuUseCase{menuRepo: menuRepo, logger: logger}
}

func (uc *CreateMenuUseCase) Execute(ctx context.Context, cmd CreateMenuCommand) (*CreateMenuResult, error) {
	exists, err := uc.menuRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check menu name: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError(fmt.Sprintf("menu name %q already exists", cmd.Name))
	}

	if cmd.ParentID != nil {
		parent, err := uc.menuRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent menu: %w", err)
		}
		if parent == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("parent menu %d not found", *cmd.ParentID))
		}
	}

	m, err := menu.NewMenu(cmd.Name, cmd.Path, cmd.ParentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	m.SetSubPaths(cmd.CreatePath, cmd.ListPath)
	m.SetIcon(cmd.Icon)
	if err := m.SetDisplayOrder(cmd.DisplayOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	depth, err := menu.ComputeDepth(cmd.ParentID, uc.lookup(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to compute menu depth: %w", err)
	}
	if err := m.SetParent(cmd.ParentID, depth); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.menuRepo.Save(ctx, m); err != nil {
		uc.logger.Errorw("failed to save menu", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to save menu: %w", err)
	}

	uc.logger.Infow("menu created", "menu_id", m.ID(), "path", m.Path(), "depth", m.Depth())
	return &CreateMenuResult{Menu: m}, nil
}

func (uc *CreateMenuUseCase) lookup(ctx context.Context) menu.ParentLookup {
	return func(id uint) (*menu.Menu, error) {
		return uc.menuRepo.GetByID(ctx, id)
	}
}

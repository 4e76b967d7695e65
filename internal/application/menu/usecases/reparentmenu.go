package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ReparentMenuCommand struct {
	MenuID      uint
	NewParentID *uint
}

type ReparentMenuResult struct {
	Menu *menu.Menu
	// DepthsChanged counts the descendants whose depth moved with
	// the subtree.
	DepthsChanged int
}

// ReparentMenuUseCase moves a menu under a new parent. The cycle
// check fails closed and the whole depth cascade is persisted in one
// transaction, so descendant depths never observably diverge from the
// new parent chain.
type ReparentMenuUseCase struct {
	menuRepo menu.Repository
	cache    MenuTreeCache
	logger   logger.Interface
}

func NewReparentMenuUseCase(menuRepo menu.Repository, cache MenuTreeCache, logger logger.Interface) *ReparentMenuUseCase {
	return &ReparentMenuUseCase{menuRepo: menuRepo, cache: cache, logger: logger}
}

func (uc *ReparentMenuUseCase) Execute(ctx context.Context, cmd ReparentMenuCommand) (*ReparentMenuResult, error) {
	m, err := uc.menuRepo.GetByID(ctx, cmd.MenuID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu %d not found", cmd.MenuID))
	}

	lookup := func(id uint) (*menu.Menu, error) {
		return uc.menuRepo.GetByID(ctx, id)
	}

	if cmd.NewParentID != nil {
		parent, err := uc.menuRepo.GetByID(ctx, *cmd.NewParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get new parent: %w", err)
		}
		if parent == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("parent menu %d not found", *cmd.NewParentID))
		}
	}

	cycle, err := menu.WouldCreateCycle(m.ID(), cmd.NewParentID, lookup)
	if err != nil {
		return nil, fmt.Errorf("cycle check failed: %w", err)
	}
	if cycle {
		return nil, errors.NewIntegrityError(
			fmt.Sprintf("re-parenting menu %d under %v would create a cycle", m.ID(), cmd.NewParentID))
	}

	depth, err := menu.ComputeDepth(cmd.NewParentID, lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to compute new depth: %w", err)
	}
	if err := m.SetParent(cmd.NewParentID, depth); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	all, err := uc.menuRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	for i, candidate := range all {
		if candidate.ID() == m.ID() {
			all[i] = m
		}
	}
	changed := menu.CascadeDepths(m, menu.ChildrenIndex(all))

	if err := uc.menuRepo.UpdateParent(ctx, m, changed); err != nil {
		uc.logger.Errorw("failed to re-parent menu", "error", err, "menu_id", m.ID())
		return nil, fmt.Errorf("failed to re-parent menu: %w", err)
	}

	if err := invalidateTrees(ctx, uc.cache); err != nil {
		uc.logger.Errorw("failed to invalidate menu tree cache", "error", err, "menu_id", m.ID())
		return nil, fmt.Errorf("menu re-parented but cache invalidation failed: %w", err)
	}

	uc.logger.Infow("menu re-parented",
		"menu_id", m.ID(), "new_depth", m.Depth(), "descendants_updated", len(changed))
	return &ReparentMenuResult{Menu: m, DepthsChanged: len(changed)}, nil
}

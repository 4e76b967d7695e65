package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/shared/logger"
)

type ListMenusQuery struct {
	OnlyVisible bool
}

type ListMenusResult struct {
	// Roots in sibling order; walk Children for the full hierarchy.
	Roots    []*menu.Menu
	Children map[uint][]*menu.Menu
	Total    int
}

type ListMenusUseCase struct {
	menuRepo menu.Repository
	logger   logger.Interface
}

func NewListMenusUseCase(menuRepo menu.Repository, logger logger.Interface) *ListMenusUseCase {
	return &ListMenusUseCase{menuRepo: menuRepo, logger: logger}
}

func (uc *ListMenusUseCase) Execute(ctx context.Context, query ListMenusQuery) (*ListMenusResult, error) {
	menus, err := uc.menuRepo.List(ctx, query.OnlyVisible)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	return &ListMenusResult{
		Roots:    menu.Roots(menus),
		Children: menu.ChildrenIndex(menus),
		Total:    len(menus),
	}, nil
}

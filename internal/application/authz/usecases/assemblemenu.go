package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// MenuNode is a caller-facing tree node. Capabilities are set on
// leaves only; group nodes carry children instead.
type MenuNode struct {
	ID           uint                     `json:"id"`
	Name         string                   `json:"name"`
	Path         string                   `json:"path"`
	CreatePath   string                   `json:"create_path,omitempty"`
	ListPath     string                   `json:"list_path,omitempty"`
	Icon         string                   `json:"icon,omitempty"`
	DisplayOrder int                      `json:"display_order"`
	IsGroup      bool                     `json:"is_group"`
	Capabilities *permission.Capabilities `json:"capabilities,omitempty"`
	Children     []*MenuNode              `json:"children,omitempty"`
}

type AssembleMenuCommand struct {
	Principal account.Principal
}

type AssembleMenuResult struct {
	Tree []*MenuNode
}

type AssembleMenuUseCase struct {
	menuRepo  menu.Repository
	grantRepo permission.GrantRepository
	cache     MenuTreeCache
	cacheTTL  time.Duration
	logger    logger.Interface
}

func NewAssembleMenuUseCase(
	menuRepo menu.Repository,
	grantRepo permission.GrantRepository,
	cache MenuTreeCache,
	cacheTTL time.Duration,
	logger logger.Interface,
) *AssembleMenuUseCase {
	return &AssembleMenuUseCase{
		menuRepo:  menuRepo,
		grantRepo: grantRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Execute builds the pruned, annotated menu tree for the principal.
// Superusers get the full visible tree; accounts with user grants get
// exactly those menus plus the parent chain; everyone else gets the
// menus their role is granted, nothing more. Role trees are served
// from cache when possible.
func (uc *AssembleMenuUseCase) Execute(ctx context.Context, cmd AssembleMenuCommand) (*AssembleMenuResult, error) {
	visible, err := uc.menuRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	if cmd.Principal.IsSuperuser {
		full := permission.FullCapabilities()
		grants := make(map[uint]permission.Capabilities, len(visible))
		for _, m := range visible {
			grants[m.ID()] = full
		}
		return &AssembleMenuResult{Tree: uc.build(visible, grants, false)}, nil
	}

	userGrants, err := uc.grantRepo.ListUserGrants(ctx, cmd.Principal.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user grants: %w", err)
	}
	if len(userGrants) > 0 {
		grants := make(map[uint]permission.Capabilities, len(userGrants))
		for _, g := range userGrants {
			grants[g.MenuID()] = g.Capabilities()
		}
		return &AssembleMenuResult{Tree: uc.build(visible, grants, true)}, nil
	}

	if cmd.Principal.RoleID == nil {
		return nil, errors.NewAccessDeniedError("no permissions configured for this role/user")
	}
	roleID := *cmd.Principal.RoleID

	if uc.cache != nil {
		tree, ok, err := uc.cache.Get(ctx, roleID)
		if err != nil {
			uc.logger.Warnw("menu tree cache read failed", "error", err, "role_id", roleID)
		} else if ok {
			return &AssembleMenuResult{Tree: tree}, nil
		}
	}

	roleGrants, err := uc.grantRepo.ListRoleGrants(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role grants: %w", err)
	}
	if len(roleGrants) == 0 {
		return nil, errors.NewAccessDeniedError("no permissions configured for this role/user")
	}

	grants := make(map[uint]permission.Capabilities, len(roleGrants))
	for _, g := range roleGrants {
		grants[g.MenuID()] = g.Capabilities()
	}
	// Role trees hold exactly the granted menus: group menus appear
	// only when the role is granted them, and a granted child under
	// an ungranted group stays hidden. Only user overrides pull in
	// the parent chain.
	tree := uc.build(visible, grants, false)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, roleID, tree, uc.cacheTTL); err != nil {
			uc.logger.Warnw("menu tree cache write failed", "error", err, "role_id", roleID)
		}
	}

	return &AssembleMenuResult{Tree: tree}, nil
}

// build prunes the visible menus to the granted set (plus ancestors
// when expandParents is set) and assembles the tree in sibling order.
func (uc *AssembleMenuUseCase) build(visible []*menu.Menu, grants map[uint]permission.Capabilities, expandParents bool) []*MenuNode {
	byID := make(map[uint]*menu.Menu, len(visible))
	for _, m := range visible {
		byID[m.ID()] = m
	}

	qualifying := make(map[uint]bool, len(grants))
	for id := range grants {
		if _, ok := byID[id]; !ok {
			continue
		}
		qualifying[id] = true
		if !expandParents {
			continue
		}
		// Walk the parent chain so granted leaves stay reachable.
		// Bounded by MaxDepth to tolerate corrupt parent links.
		current := byID[id]
		for hops := 0; current.ParentID() != nil && hops < menu.MaxDepth; hops++ {
			parent, ok := byID[*current.ParentID()]
			if !ok {
				break
			}
			qualifying[parent.ID()] = true
			current = parent
		}
	}

	kept := make([]*menu.Menu, 0, len(qualifying))
	for _, m := range visible {
		if qualifying[m.ID()] {
			kept = append(kept, m)
		}
	}
	children := menu.ChildrenIndex(kept)

	var attach func(m *menu.Menu) *MenuNode
	attach = func(m *menu.Menu) *MenuNode {
		node := &MenuNode{
			ID:           m.ID(),
			Name:         m.Name(),
			Path:         m.Path(),
			CreatePath:   m.CreatePath(),
			ListPath:     m.ListPath(),
			Icon:         m.Icon(),
			DisplayOrder: m.DisplayOrder(),
		}
		for _, child := range children[m.ID()] {
			node.Children = append(node.Children, attach(child))
		}
		if len(node.Children) > 0 {
			node.IsGroup = true
			return node
		}
		caps, ok := grants[m.ID()]
		if !ok {
			caps = permission.DefaultCapabilities()
		}
		node.Capabilities = &caps
		return node
	}

	var tree []*MenuNode
	for _, root := range menu.Roots(kept) {
		tree = append(tree, attach(root))
	}
	return tree
}

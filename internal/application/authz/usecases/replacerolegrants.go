package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ReplaceRoleGrantsCommand struct {
	RoleID uint
	Grants []permission.GrantSpec
}

type ReplaceRoleGrantsResult struct {
	Count int
}

type ReplaceRoleGrantsUseCase struct {
	roleRepo  permission.RoleRepository
	grantRepo permission.GrantRepository
	menuRepo  menu.Repository
	cache     MenuTreeCache
	logger    logger.Interface
}

func NewReplaceRoleGrantsUseCase(
	roleRepo permission.RoleRepository,
	grantRepo permission.GrantRepository,
	menuRepo menu.Repository,
	cache MenuTreeCache,
	logger logger.Interface,
) *ReplaceRoleGrantsUseCase {
	return &ReplaceRoleGrantsUseCase{
		roleRepo:  roleRepo,
		grantRepo: grantRepo,
		menuRepo:  menuRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Execute atomically replaces the role's grants and invalidates the
// cached menu tree for that role before returning.
func (uc *ReplaceRoleGrantsUseCase) Execute(ctx context.Context, cmd ReplaceRoleGrantsCommand) (*ReplaceRoleGrantsResult, error) {
	if err := uc.validateCommand(ctx, cmd); err != nil {
		return nil, err
	}

	role, err := uc.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if role == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("role %d not found", cmd.RoleID))
	}

	count, err := uc.grantRepo.ReplaceRoleGrants(ctx, cmd.RoleID, cmd.Grants)
	if err != nil {
		uc.logger.Errorw("failed to replace role grants", "error", err, "role_id", cmd.RoleID)
		return nil, fmt.Errorf("failed to replace role grants: %w", err)
	}

	// The grants are already replaced; returning success while the
	// old tree is still cached would serve it for the full TTL.
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, cmd.RoleID); err != nil {
			uc.logger.Errorw("failed to invalidate role menu tree cache", "error", err, "role_id", cmd.RoleID)
			return nil, fmt.Errorf("grants replaced but cache invalidation failed: %w", err)
		}
	}

	uc.logger.Infow("role grants replaced", "role_id", cmd.RoleID, "count", count)
	return &ReplaceRoleGrantsResult{Count: count}, nil
}

func (uc *ReplaceRoleGrantsUseCase) validateCommand(ctx context.Context, cmd ReplaceRoleGrantsCommand) error {
	if cmd.RoleID == 0 {
		return errors.NewValidationError("role ID is required")
	}
	if len(cmd.Grants) == 0 {
		return errors.NewValidationError("at least one grant is required")
	}

	seen := make(map[uint]bool, len(cmd.Grants))
	for _, g := range cmd.Grants {
		if seen[g.MenuID] {
			return errors.NewValidationError(fmt.Sprintf("duplicate menu ID %d in grant list", g.MenuID))
		}
		seen[g.MenuID] = true

		if g.Capabilities.IsZero() {
			return errors.NewValidationError(fmt.Sprintf("grant for menu %d has no capabilities set", g.MenuID))
		}

		target, err := uc.menuRepo.GetByID(ctx, g.MenuID)
		if err != nil {
			return fmt.Errorf("failed to get menu %d: %w", g.MenuID, err)
		}
		if target == nil {
			return errors.NewValidationError(fmt.Sprintf("unknown menu ID %d in grant list", g.MenuID))
		}
	}
	return nil
}

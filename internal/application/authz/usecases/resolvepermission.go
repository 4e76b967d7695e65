package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/logger"
)

// Deny reasons surfaced to callers and logs.
const (
	ReasonSuperuser       = "superuser"
	ReasonUnknownResource = "unknown resource"
	ReasonUnknownAction   = "unknown action"
	ReasonUserGrant       = "user grant"
	ReasonRoleGrant       = "role grant"
	ReasonNoGrant         = "no grant configured"
)

type ResolvePermissionCommand struct {
	Principal account.Principal
	Action    string
	MenuPath  string
}

// Decision is the outcome of a permission check together with the
// rule that produced it.
type Decision struct {
	Allowed bool
	Reason  string
}

type ResolvePermissionUseCase struct {
	menuRepo  menu.Repository
	grantRepo permission.GrantRepository
	logger    logger.Interface
}

func NewResolvePermissionUseCase(
	menuRepo menu.Repository,
	grantRepo permission.GrantRepository,
	logger logger.Interface,
) *ResolvePermissionUseCase {
	return &ResolvePermissionUseCase{
		menuRepo:  menuRepo,
		grantRepo: grantRepo,
		logger:    logger,
	}
}

// Execute decides Allow/Deny in strict order: superuser first, then
// menu resolution, then the user grant, then the role grant. A user
// grant fully shadows the role grant in both directions; a more
// restrictive override never falls back to a permissive role grant.
func (uc *ResolvePermissionUseCase) Execute(ctx context.Context, cmd ResolvePermissionCommand) (Decision, error) {
	if cmd.Principal.IsSuperuser {
		return Decision{Allowed: true, Reason: ReasonSuperuser}, nil
	}

	action, err := permission.NewAction(cmd.Action)
	if err != nil {
		uc.logger.Warnw("permission check with unknown action",
			"account_id", cmd.Principal.AccountID, "action", cmd.Action)
		return Decision{Allowed: false, Reason: ReasonUnknownAction}, nil
	}

	target, err := uc.menuRepo.GetByPath(ctx, cmd.MenuPath)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to resolve menu by path: %w", err)
	}
	if target == nil {
		uc.logger.Warnw("permission check against unknown resource",
			"account_id", cmd.Principal.AccountID, "path", cmd.MenuPath)
		return Decision{Allowed: false, Reason: ReasonUnknownResource}, nil
	}

	userGrant, err := uc.grantRepo.GetUserGrant(ctx, cmd.Principal.AccountID, target.ID())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to get user grant: %w", err)
	}
	if userGrant != nil {
		return Decision{Allowed: userGrant.Capabilities().Allows(action), Reason: ReasonUserGrant}, nil
	}

	if cmd.Principal.RoleID != nil {
		roleGrant, err := uc.grantRepo.GetRoleGrant(ctx, *cmd.Principal.RoleID, target.ID())
		if err != nil {
			return Decision{}, fmt.Errorf("failed to get role grant: %w", err)
		}
		if roleGrant != nil {
			return Decision{Allowed: roleGrant.Capabilities().Allows(action), Reason: ReasonRoleGrant}, nil
		}
	}

	return Decision{Allowed: false, Reason: ReasonNoGrant}, nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SaveUserGrantCommand struct {
	AccountID    uint
	MenuID       uint
	Capabilities permission.Capabilities
	AssignedByID *uint
}

type SaveUserGrantResult struct {
	Grant *permission.UserGrant
}

// SaveUserGrantUseCase creates or updates a per-account menu
// override. An override fully shadows the account's role grant on
// that menu, so saving one with restricted capabilities is how a
// specific account gets locked down below its role.
type SaveUserGrantUseCase struct {
	accountRepo account.Repository
	menuRepo    menu.Repository
	grantRepo   permission.GrantRepository
	logger      logger.Interface
}

func NewSaveUserGrantUseCase(
	accountRepo account.Repository,
	menuRepo menu.Repository,
	grantRepo permission.GrantRepository,
	logger logger.Interface,
) *SaveUserGrantUseCase {
	return &SaveUserGrantUseCase{
		accountRepo: accountRepo,
		menuRepo:    menuRepo,
		grantRepo:   grantRepo,
		logger:      logger,
	}
}

func (uc *SaveUserGrantUseCase) Execute(ctx context.Context, cmd SaveUserGrantCommand) (*SaveUserGrantResult, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}
	if cmd.MenuID == 0 {
		return nil, errors.NewValidationError("menu ID is required")
	}

	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("account %d not found", cmd.AccountID))
	}

	target, err := uc.menuRepo.GetByID(ctx, cmd.MenuID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu %d not found", cmd.MenuID))
	}

	grant, err := permission.NewUserGrant(cmd.AccountID, cmd.MenuID, cmd.Capabilities, cmd.AssignedByID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.grantRepo.SaveUserGrant(ctx, grant); err != nil {
		uc.logger.Errorw("failed to save user grant", "error", err,
			"account_id", cmd.AccountID, "menu_id", cmd.MenuID)
		return nil, fmt.Errorf("failed to save user grant: %w", err)
	}

	uc.logger.Infow("user grant saved", "account_id", cmd.AccountID, "menu_id", cmd.MenuID)
	return &SaveUserGrantResult{Grant: grant}, nil
}

type RevokeUserGrantCommand struct {
	AccountID uint
	MenuID    uint
}

type RevokeUserGrantUseCase struct {
	grantRepo permission.GrantRepository
	logger    logger.Interface
}

func NewRevokeUserGrantUseCase(grantRepo permission.GrantRepository, logger logger.Interface) *RevokeUserGrantUseCase {
	return &RevokeUserGrantUseCase{grantRepo: grantRepo, logger: logger}
}

// Execute removes the override; the account falls back to its role
// grants on the next check.
func (uc *RevokeUserGrantUseCase) Execute(ctx context.Context, cmd RevokeUserGrantCommand) error {
	if cmd.AccountID == 0 || cmd.MenuID == 0 {
		return errors.NewValidationError("account ID and menu ID are required")
	}

	if err := uc.grantRepo.DeleteUserGrant(ctx, cmd.AccountID, cmd.MenuID); err != nil {
		uc.logger.Errorw("failed to revoke user grant", "error", err,
			"account_id", cmd.AccountID, "menu_id", cmd.MenuID)
		return fmt.Errorf("failed to revoke user grant: %w", err)
	}

	uc.logger.Infow("user grant revoked", "account_id", cmd.AccountID, "menu_id", cmd.MenuID)
	return nil
}

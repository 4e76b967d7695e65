package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignRoleCommand struct {
	AccountID uint
	// RoleName empty clears the role.
	RoleName string
}

type AssignRoleResult struct {
	Account *account.Account
}

type AssignRoleUseCase struct {
	accountRepo account.Repository
	roleRepo    permission.RoleRepository
	logger      logger.Interface
}

func NewAssignRoleUseCase(
	accountRepo account.Repository,
	roleRepo permission.RoleRepository,
	logger logger.Interface,
) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
		logger:      logger,
	}
}

func (uc *AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (*AssignRoleResult, error) {
	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("account %d not found", cmd.AccountID))
	}

	if cmd.RoleName == "" {
		acct.ClearRole()
	} else {
		role, err := uc.roleRepo.GetByName(ctx, cmd.RoleName)
		if err != nil {
			return nil, fmt.Errorf("failed to get role: %w", err)
		}
		if role == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("role %q not found", cmd.RoleName))
		}
		if err := acct.AssignRole(role.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to update account role", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	uc.logger.Infow("account role changed", "account_id", cmd.AccountID, "role", cmd.RoleName)
	return &AssignRoleResult{Account: acct}, nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateAccountCommand struct {
	Username    string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required,len=10,numeric"`
	Address     string `json:"address" validate:"max=200"`
	RoleName    string `json:"role_name" validate:"omitempty,max=50"`
}

type CreateAccountResult struct {
	Account *account.Account
}

type CreateAccountUseCase struct {
	accountRepo account.Repository
	roleRepo    permission.RoleRepository
	logger      logger.Interface
}

func NewCreateAccountUseCase(
	accountRepo account.Repository,
	roleRepo permission.RoleRepository,
	logger logger.Interface,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
		logger:      logger,
	}
}

func (uc *CreateAccountUseCase) Execute(ctx context.Context, cmd CreateAccountCommand) (*CreateAccountResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.accountRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("username %q is already taken", cmd.Username))
	}

	var roleID *uint
	if cmd.RoleName != "" {
		role, err := uc.roleRepo.GetByName(ctx, cmd.RoleName)
		if err != nil {
			return nil, fmt.Errorf("failed to get role: %w", err)
		}
		if role == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("role %q not found", cmd.RoleName))
		}
		id := role.ID()
		roleID = &id
	}

	acct, err := account.NewAccount(cmd.Username, cmd.Email, cmd.PhoneNumber, roleID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	acct.SetAddress(cmd.Address)

	if err := uc.accountRepo.Save(ctx, acct); err != nil {
		uc.logger.Errorw("failed to save account", "error", err, "username", cmd.Username)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError("username, email or phone number already in use")
		}
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	uc.logger.Infow("account created", "account_id", acct.ID(), "username", acct.Username())
	return &CreateAccountResult{Account: acct}, nil
}

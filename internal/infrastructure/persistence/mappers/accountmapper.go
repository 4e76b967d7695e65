package mappers

import (
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/models"
)

type AccountMapper interface {
	ToModel(a *account.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) (*account.Account, error)
	ToDomainList(models []*models.AccountModel) ([]*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (am *AccountMapperImpl) ToModel(a *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:          a.ID(),
		Username:    a.Username(),
		Email:       a.Email(),
		PhoneNumber: a.PhoneNumber(),
		Address:     a.Address(),
		RoleID:      a.RoleID(),
		IsSuperuser: a.IsSuperuser(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
		UpdatedAt:   a.UpdatedAt().UnixMilli(),
	}
}

func (am *AccountMapperImpl) ToDomain(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}

	a, err := account.ReconstructAccount(
		model.ID,
		model.Username,
		model.Email,
		model.PhoneNumber,
		model.Address,
		model.RoleID,
		model.IsSuperuser,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account: %w", err)
	}
	return a, nil
}

func (am *AccountMapperImpl) ToDomainList(accountModels []*models.AccountModel) ([]*account.Account, error) {
	result := make([]*account.Account, 0, len(accountModels))
	for _, model := range accountModels {
		a, err := am.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

package mappers

import (
	"fmt"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/infrastructure/persistence/models"
)

// PermissionMapper converts roles and grants between domain entities
// and persistence models.
type PermissionMapper interface {
	RoleToModel(r *permission.Role) *models.RoleModel
	RoleToDomain(model *models.RoleModel) (*permission.Role, error)

	RoleGrantToModel(g *permission.RoleGrant) *models.RoleGrantModel
	RoleGrantToDomain(model *models.RoleGrantModel) (*permission.RoleGrant, error)

	UserGrantToModel(g *permission.UserGrant) *models.UserGrantModel
	UserGrantToDomain(model *models.UserGrantModel) (*permission.UserGrant, error)
}

type PermissionMapperImpl struct{}

func NewPermissionMapper() PermissionMapper {
	return &PermissionMapperImpl{}
}

func (pm *PermissionMapperImpl) RoleToModel(r *permission.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:           r.ID(),
		Name:         r.Name(),
		IsPredefined: r.IsPredefined(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
		UpdatedAt:    r.UpdatedAt().UnixMilli(),
	}
}

func (pm *PermissionMapperImpl) RoleToDomain(model *models.RoleModel) (*permission.Role, error) {
	if model == nil {
		return nil, nil
	}

	r, err := permission.ReconstructRole(
		model.ID,
		model.Name,
		model.IsPredefined,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role: %w", err)
	}
	return r, nil
}

func (pm *PermissionMapperImpl) RoleGrantToModel(g *permission.RoleGrant) *models.RoleGrantModel {
	caps := g.Capabilities()
	return &models.RoleGrantModel{
		ID:        g.ID(),
		RoleID:    g.RoleID(),
		MenuID:    g.MenuID(),
		CanCreate: caps.Create,
		CanView:   caps.View,
		CanUpdate: caps.Update,
		CanDelete: caps.Delete,
		CreatedAt: g.CreatedAt().UnixMilli(),
	}
}

func (pm *PermissionMapperImpl) RoleGrantToDomain(model *models.RoleGrantModel) (*permission.RoleGrant, error) {
	if model == nil {
		return nil, nil
	}

	g, err := permission.ReconstructRoleGrant(
		model.ID,
		model.RoleID,
		model.MenuID,
		permission.Capabilities{
			Create: model.CanCreate,
			View:   model.CanView,
			Update: model.CanUpdate,
			Delete: model.CanDelete,
		},
		msToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role grant: %w", err)
	}
	return g, nil
}

func (pm *PermissionMapperImpl) UserGrantToModel(g *permission.UserGrant) *models.UserGrantModel {
	caps := g.Capabilities()
	return &models.UserGrantModel{
		ID:           g.ID(),
		AccountID:    g.AccountID(),
		MenuID:       g.MenuID(),
		CanCreate:    caps.Create,
		CanView:      caps.View,
		CanUpdate:    caps.Update,
		CanDelete:    caps.Delete,
		AssignedByID: g.AssignedByID(),
		AssignedAt:   g.AssignedAt().UnixMilli(),
	}
}

func (pm *PermissionMapperImpl) UserGrantToDomain(model *models.UserGrantModel) (*permission.UserGrant, error) {
	if model == nil {
		return nil, nil
	}

	g, err := permission.ReconstructUserGrant(
		model.ID,
		model.AccountID,
		model.MenuID,
		permission.Capabilities{
			Create: model.CanCreate,
			View:   model.CanView,
			Update: model.CanUpdate,
			Delete: model.CanDelete,
		},
		model.AssignedByID,
		msToTime(model.AssignedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user grant: %w", err)
	}
	return g, nil
}

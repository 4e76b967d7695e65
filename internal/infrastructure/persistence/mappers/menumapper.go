package mappers

import (
	"fmt"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/infrastructure/persistence/models"
)

// MenuMapper handles the conversion between Menu domain entities and persistence models.
type MenuMapper interface {
	ToModel(m *menu.Menu) *models.MenuModel
	ToDomain(model *models.MenuModel) (*menu.Menu, error)
	ToDomainList(models []*models.MenuModel) ([]*menu.Menu, error)
}

type MenuMapperImpl struct{}

func NewMenuMapper() MenuMapper {
	return &MenuMapperImpl{}
}

func (mm *MenuMapperImpl) ToModel(m *menu.Menu) *models.MenuModel {
	return &models.MenuModel{
		ID:           m.ID(),
		Name:         m.Name(),
		Path:         m.Path(),
		CreatePath:   m.CreatePath(),
		ListPath:     m.ListPath(),
		Icon:         m.Icon(),
		ParentID:     m.ParentID(),
		IsVisible:    m.IsVisible(),
		DisplayOrder: m.DisplayOrder(),
		Depth:        m.Depth(),
		CreatedAt:    m.CreatedAt().UnixMilli(),
		UpdatedAt:    m.UpdatedAt().UnixMilli(),
	}
}

func (mm *MenuMapperImpl) ToDomain(model *models.MenuModel) (*menu.Menu, error) {
	if model == nil {
		return nil, nil
	}

	m, err := menu.ReconstructMenu(
		model.ID,
		model.Name,
		model.Path,
		model.CreatePath,
		model.ListPath,
		model.Icon,
		model.ParentID,
		model.IsVisible,
		model.DisplayOrder,
		model.Depth,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct menu: %w", err)
	}
	return m, nil
}

func (mm *MenuMapperImpl) ToDomainList(menuModels []*models.MenuModel) ([]*menu.Menu, error) {
	result := make([]*menu.Menu, 0, len(menuModels))
	for _, model := range menuModels {
		m, err := mm.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}

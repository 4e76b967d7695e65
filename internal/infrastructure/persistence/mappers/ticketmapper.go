package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities
// and persistence models. Status and priority rows are loaded by the
// repository and passed in already reconstructed.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, status *ticket.Status, priority *ticket.Priority) (*ticket.Ticket, error)

	StatusToModel(s *ticket.Status) *models.TicketStatusModel
	StatusToDomain(model *models.TicketStatusModel) (*ticket.Status, error)

	PriorityToModel(p *ticket.Priority) *models.TicketPriorityModel
	PriorityToDomain(model *models.TicketPriorityModel) (*ticket.Priority, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (tm *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		Number:           t.Number(),
		Title:            t.Title(),
		Description:      t.Description(),
		MenuID:           t.MenuID(),
		StatusID:         t.Status().ID(),
		PriorityID:       t.Priority().ID(),
		CreatorID:        t.CreatorID(),
		AssigneeID:       t.AssigneeID(),
		FirstResponseAt:  timePtrToMsPtr(t.FirstResponseAt()),
		ResponseDeadline: timePtrToMsPtr(t.ResponseDeadline()),
		DueDate:          timePtrToMsPtr(t.DueDate()),
		ResolvedAt:       timePtrToMsPtr(t.ResolvedAt()),
		SLADueDate:       timePtrToMsPtr(t.SLADueDate()),
		SLABreached:      t.SLABreached(time.Time{}),
		IsEscalated:      t.IsEscalated(),
		CreatedAt:        t.CreatedAt().UnixMilli(),
		UpdatedAt:        t.UpdatedAt().UnixMilli(),
	}
}

func (tm *TicketMapperImpl) ToDomain(model *models.TicketModel, status *ticket.Status, priority *ticket.Priority) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		model.MenuID,
		status,
		priority,
		model.CreatorID,
		model.AssigneeID,
		msPtrToTimePtr(model.FirstResponseAt),
		msPtrToTimePtr(model.ResponseDeadline),
		msPtrToTimePtr(model.DueDate),
		msPtrToTimePtr(model.ResolvedAt),
		msPtrToTimePtr(model.SLADueDate),
		model.SLABreached,
		model.IsEscalated,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}
	return t, nil
}

func (tm *TicketMapperImpl) StatusToModel(s *ticket.Status) *models.TicketStatusModel {
	return &models.TicketStatusModel{
		ID:          s.ID(),
		Name:        s.Name(),
		Code:        s.Code(),
		Description: s.Description(),
		Type:        s.Type().String(),
		Weight:      s.Weight(),
		IsDefault:   s.IsDefault(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (tm *TicketMapperImpl) StatusToDomain(model *models.TicketStatusModel) (*ticket.Status, error) {
	if model == nil {
		return nil, nil
	}

	s, err := ticket.ReconstructStatus(
		model.ID,
		model.Name,
		model.Code,
		model.Description,
		ticket.StatusType(model.Type),
		model.Weight,
		model.IsDefault,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket status: %w", err)
	}
	return s, nil
}

func (tm *TicketMapperImpl) PriorityToModel(p *ticket.Priority) *models.TicketPriorityModel {
	return &models.TicketPriorityModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Code:        p.Code(),
		Description: p.Description(),
		Weight:      p.Weight(),
		Color:       p.Color(),
		SLAHours:    p.SLAHours(),
		IsDefault:   p.IsDefault(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func (tm *TicketMapperImpl) PriorityToDomain(model *models.TicketPriorityModel) (*ticket.Priority, error) {
	if model == nil {
		return nil, nil
	}

	p, err := ticket.ReconstructPriority(
		model.ID,
		model.Name,
		model.Code,
		model.Description,
		model.Weight,
		model.Color,
		model.SLAHours,
		model.IsDefault,
		msToTime(model.CreatedAt),
		msToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket priority: %w", err)
	}
	return p, nil
}

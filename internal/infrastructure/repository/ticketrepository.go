package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "menu_id", "status_id", "priority_id",
			"assignee_id", "first_response_at", "response_deadline", "due_date",
			"resolved_at", "sla_due_date", "sla_breached", "is_escalated").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.toDomain(ctx, &model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket by number: %w", err)
	}

	return r.toDomain(ctx, &model)
}

func (r *TicketRepository) List(ctx context.Context, includeResolved bool) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{})
	if !includeResolved {
		query = query.Where("resolved_at IS NULL")
	}

	var ticketModels []*models.TicketModel
	if err := query.Order("created_at ASC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(ctx, ticketModels)
}

func (r *TicketRepository) ListByAssignee(ctx context.Context, assigneeID uint) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("assignee_id = ?", assigneeID).
		Order("created_at ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by assignee: %w", err)
	}

	return r.toDomainList(ctx, ticketModels)
}

func (r *TicketRepository) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by creator: %w", err)
	}

	return r.toDomainList(ctx, ticketModels)
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", id)
	}

	return nil
}

func (r *TicketRepository) toDomain(ctx context.Context, model *models.TicketModel) (*ticket.Ticket, error) {
	statuses, priorities, err := r.loadLookups(ctx)
	if err != nil {
		return nil, err
	}

	return r.reconstruct(model, statuses, priorities)
}

// toDomainList loads the status and priority lookup tables once and
// reconstructs every ticket against them.
func (r *TicketRepository) toDomainList(ctx context.Context, ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	if len(ticketModels) == 0 {
		return []*ticket.Ticket{}, nil
	}

	statuses, priorities, err := r.loadLookups(ctx)
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		t, err := r.reconstruct(model, statuses, priorities)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) loadLookups(ctx context.Context) (map[uint]*ticket.Status, map[uint]*ticket.Priority, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var statusModels []*models.TicketStatusModel
	if err := tx.Find(&statusModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket statuses: %w", err)
	}

	var priorityModels []*models.TicketPriorityModel
	if err := tx.Find(&priorityModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket priorities: %w", err)
	}

	statuses := make(map[uint]*ticket.Status, len(statusModels))
	for _, model := range statusModels {
		s, err := r.mapper.StatusToDomain(model)
		if err != nil {
			return nil, nil, err
		}
		statuses[s.ID()] = s
	}

	priorities := make(map[uint]*ticket.Priority, len(priorityModels))
	for _, model := range priorityModels {
		p, err := r.mapper.PriorityToDomain(model)
		if err != nil {
			return nil, nil, err
		}
		priorities[p.ID()] = p
	}

	return statuses, priorities, nil
}

func (r *TicketRepository) reconstruct(model *models.TicketModel, statuses map[uint]*ticket.Status, priorities map[uint]*ticket.Priority) (*ticket.Ticket, error) {
	status, ok := statuses[model.StatusID]
	if !ok {
		return nil, fmt.Errorf("ticket %d references unknown status %d", model.ID, model.StatusID)
	}
	priority, ok := priorities[model.PriorityID]
	if !ok {
		return nil, fmt.Errorf("ticket %d references unknown priority %d", model.ID, model.PriorityID)
	}

	return r.mapper.ToDomain(model, status, priority)
}

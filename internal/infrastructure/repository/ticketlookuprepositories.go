package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

// StatusRepository persists the ticket status lookup table. Marking a
// status default clears the flag on every other row in the same
// transaction so at most one default exists.
type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *StatusRepository) Save(ctx context.Context, s *ticket.Status) error {
	model := r.mapper.StatusToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		if model.IsDefault {
			if err := clearDefault(tx, &models.TicketStatusModel{}, 0); err != nil {
				return err
			}
		}
		return tx.Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save ticket status: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StatusRepository) Update(ctx context.Context, s *ticket.Status) error {
	model := r.mapper.StatusToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		if model.IsDefault {
			if err := clearDefault(tx, &models.TicketStatusModel{}, model.ID); err != nil {
				return err
			}
		}
		return tx.
			Model(&models.TicketStatusModel{}).
			Where("id = ?", model.ID).
			Select("name", "code", "description", "type", "weight", "is_default").
			Updates(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}

	return nil
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*ticket.Status, error) {
	var model models.TicketStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) GetByCode(ctx context.Context, code string) (*ticket.Status, error) {
	var model models.TicketStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", strings.ToUpper(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket status by code: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) GetDefault(ctx context.Context) (*ticket.Status, error) {
	var model models.TicketStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_default = ?", true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default ticket status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) List(ctx context.Context) ([]*ticket.Status, error) {
	var statusModels []*models.TicketStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("weight ASC").Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket statuses: %w", err)
	}

	statuses := make([]*ticket.Status, 0, len(statusModels))
	for _, model := range statusModels {
		s, err := r.mapper.StatusToDomain(model)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var referenced int64
		if err := tx.
			Model(&models.TicketModel{}).
			Where("status_id = ?", id).
			Count(&referenced).Error; err != nil {
			return fmt.Errorf("failed to count tickets with status: %w", err)
		}
		if referenced > 0 {
			return fmt.Errorf("status %d is still used by %d tickets", id, referenced)
		}

		result := tx.Delete(&models.TicketStatusModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("ticket status %d not found", id)
		}

		return nil
	})
}

// PriorityRepository persists the ticket priority lookup table with
// the same single-default guarantee as StatusRepository.
type PriorityRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewPriorityRepository(db *gorm.DB) *PriorityRepository {
	return &PriorityRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *PriorityRepository) Save(ctx context.Context, p *ticket.Priority) error {
	model := r.mapper.PriorityToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		if model.IsDefault {
			if err := clearDefault(tx, &models.TicketPriorityModel{}, 0); err != nil {
				return err
			}
		}
		return tx.Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save ticket priority: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PriorityRepository) Update(ctx context.Context, p *ticket.Priority) error {
	model := r.mapper.PriorityToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		if model.IsDefault {
			if err := clearDefault(tx, &models.TicketPriorityModel{}, model.ID); err != nil {
				return err
			}
		}
		return tx.
			Model(&models.TicketPriorityModel{}).
			Where("id = ?", model.ID).
			Select("name", "code", "description", "weight", "color", "sla_hours", "is_default").
			Updates(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update ticket priority: %w", err)
	}

	return nil
}

func (r *PriorityRepository) GetByID(ctx context.Context, id uint) (*ticket.Priority, error) {
	var model models.TicketPriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket priority: %w", err)
	}

	return r.mapper.PriorityToDomain(&model)
}

func (r *PriorityRepository) GetByCode(ctx context.Context, code string) (*ticket.Priority, error) {
	var model models.TicketPriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", strings.ToUpper(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket priority by code: %w", err)
	}

	return r.mapper.PriorityToDomain(&model)
}

func (r *PriorityRepository) GetDefault(ctx context.Context) (*ticket.Priority, error) {
	var model models.TicketPriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_default = ?", true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default ticket priority: %w", err)
	}

	return r.mapper.PriorityToDomain(&model)
}

func (r *PriorityRepository) List(ctx context.Context) ([]*ticket.Priority, error) {
	var priorityModels []*models.TicketPriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("weight DESC").Find(&priorityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket priorities: %w", err)
	}

	priorities := make([]*ticket.Priority, 0, len(priorityModels))
	for _, model := range priorityModels {
		p, err := r.mapper.PriorityToDomain(model)
		if err != nil {
			return nil, err
		}
		priorities = append(priorities, p)
	}
	return priorities, nil
}

func (r *PriorityRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var referenced int64
		if err := tx.
			Model(&models.TicketModel{}).
			Where("priority_id = ?", id).
			Count(&referenced).Error; err != nil {
			return fmt.Errorf("failed to count tickets with priority: %w", err)
		}
		if referenced > 0 {
			return fmt.Errorf("priority %d is still used by %d tickets", id, referenced)
		}

		result := tx.Delete(&models.TicketPriorityModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket priority: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("ticket priority %d not found", id)
		}

		return nil
	})
}

func clearDefault(tx *gorm.DB, model any, excludeID uint) error {
	query := tx.Model(model).Where("is_default = ?", true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to clear default flag: %w", err)
	}
	return nil
}

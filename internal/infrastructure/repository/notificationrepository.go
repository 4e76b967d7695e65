package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, l *notification.Log) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification log: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *NotificationRepository) Update(ctx context.Context, l *notification.Log) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationLogModel{}).
		Where("id = ?", model.ID).
		Select("is_read", "is_sent", "sent_at", "read_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification log: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Log, error) {
	var model models.NotificationLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification log: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool) ([]*notification.Log, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if unreadOnly {
		tx = tx.Scopes(db.UnreadOnly())
	}

	var logModels []*models.NotificationLogModel
	if err := tx.Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToDomainList(logModels)
}

func (r *NotificationRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*notification.Log, error) {
	var logModels []*models.NotificationLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket notifications: %w", err)
	}

	return r.mapper.ToDomainList(logModels)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationLogModel{}).
		Where("recipient_id = ?", recipientID).
		Scopes(db.UnreadOnly()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.NotificationLogModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification log %d not found", id)
	}

	return nil
}

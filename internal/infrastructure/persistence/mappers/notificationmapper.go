package mappers

import (
	"encoding/json"
	"fmt"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(l *notification.Log) (*models.NotificationLogModel, error)
	ToDomain(model *models.NotificationLogModel) (*notification.Log, error)
	ToDomainList(models []*models.NotificationLogModel) ([]*notification.Log, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (nm *NotificationMapperImpl) ToModel(l *notification.Log) (*models.NotificationLogModel, error) {
	model := &models.NotificationLogModel{
		ID:          l.ID(),
		RecipientID: l.RecipientID(),
		SenderID:    l.SenderID(),
		TicketID:    l.TicketID(),
		Type:        l.Type().String(),
		Title:       l.Title(),
		Message:     l.Message(),
		IsRead:      l.IsRead(),
		IsSent:      l.IsSent(),
		SentAt:      timePtrToMsPtr(l.SentAt()),
		ReadAt:      timePtrToMsPtr(l.ReadAt()),
		CreatedAt:   l.CreatedAt().UnixMilli(),
	}

	if len(l.ExtraData()) > 0 {
		data, err := json.Marshal(l.ExtraData())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification extra data: %w", err)
		}
		model.ExtraData = data
	}

	return model, nil
}

func (nm *NotificationMapperImpl) ToDomain(model *models.NotificationLogModel) (*notification.Log, error) {
	if model == nil {
		return nil, nil
	}

	var extraData map[string]any
	if len(model.ExtraData) > 0 {
		if err := json.Unmarshal(model.ExtraData, &extraData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification extra data: %w", err)
		}
	}

	l, err := notification.ReconstructLog(
		model.ID,
		model.RecipientID,
		model.SenderID,
		model.TicketID,
		notification.Type(model.Type),
		model.Title,
		model.Message,
		extraData,
		model.IsRead,
		model.IsSent,
		msPtrToTimePtr(model.SentAt),
		msPtrToTimePtr(model.ReadAt),
		msToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification log: %w", err)
	}
	return l, nil
}

func (nm *NotificationMapperImpl) ToDomainList(logModels []*models.NotificationLogModel) ([]*notification.Log, error) {
	result := make([]*notification.Log, 0, len(logModels))
	for _, model := range logModels {
		l, err := nm.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

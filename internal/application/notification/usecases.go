package notification

import (
	"context"
	"time"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
)

// Inbox summarizes a recipient's notifications.
type Inbox struct {
	Logs        []*notification.Log
	UnreadCount int64
}

// ListInbox returns a recipient's notification logs, optionally only
// the unread ones, together with the unread count.
func (s *Service) ListInbox(ctx context.Context, recipientID uint, unreadOnly bool) (*Inbox, error) {
	if recipientID == 0 {
		return nil, errors.NewValidationError("Recipient ID is required")
	}

	logs, err := s.notificationRepo.ListByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list notifications", err.Error())
	}

	unread, err := s.notificationRepo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to count unread notifications", err.Error())
	}

	return &Inbox{Logs: logs, UnreadCount: unread}, nil
}

// MarkRead marks a single notification as read. Only the recipient
// may mark their own notifications.
func (s *Service) MarkRead(ctx context.Context, recipientID, logID uint) error {
	l, err := s.notificationRepo.GetByID(ctx, logID)
	if err != nil {
		return errors.NewInternalError("Failed to get notification", err.Error())
	}
	if l == nil {
		return errors.NewNotFoundError("Notification not found")
	}
	if l.RecipientID() != recipientID {
		return errors.NewAccessDeniedError("Notification belongs to another account")
	}
	if l.IsRead() {
		return nil
	}

	l.MarkRead(time.Now())
	if err := s.notificationRepo.Update(ctx, l); err != nil {
		return errors.NewInternalError("Failed to update notification", err.Error())
	}
	return nil
}

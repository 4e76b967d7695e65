package notification

import "context"

// Repository defines persistence for notification logs.
type Repository interface {
	Save(ctx context.Context, l *Log) error
	Update(ctx context.Context, l *Log) error
	GetByID(ctx context.Context, id uint) (*Log, error)
	ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool) ([]*Log, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Log, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

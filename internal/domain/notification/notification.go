package notification

import (
	"fmt"
	"time"
)

// Type classifies what a notification log entry is about.
type Type string

const (
	TypeTicketCreated      Type = "ticket_created"
	TypeTicketUpdated      Type = "ticket_updated"
	TypeTicketAssigned     Type = "ticket_assigned"
	TypeTicketReassigned   Type = "ticket_reassigned"
	TypeStatusChanged      Type = "status_changed"
	TypePriorityChanged    Type = "priority_changed"
	TypeCommentAdded       Type = "comment_added"
	TypeDueDateApproaching Type = "due_date_approaching"
)

var validTypes = map[Type]bool{
	TypeTicketCreated:      true,
	TypeTicketUpdated:      true,
	TypeTicketAssigned:     true,
	TypeTicketReassigned:   true,
	TypeStatusChanged:      true,
	TypePriorityChanged:    true,
	TypeCommentAdded:       true,
	TypeDueDateApproaching: true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

// Log is a persisted notification record. Delivery happens outside
// the core; this aggregate only tracks what was produced and whether
// the recipient has seen it.
type Log struct {
	id          uint
	recipientID uint
	senderID    *uint
	ticketID    uint
	logType     Type
	title       string
	message     string
	extraData   map[string]any
	isRead      bool
	isSent      bool
	sentAt      *time.Time
	readAt      *time.Time
	createdAt   time.Time
}

func NewLog(recipientID uint, senderID *uint, ticketID uint, logType Type, title, message string, extraData map[string]any) (*Log, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !logType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", logType)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	return &Log{
		recipientID: recipientID,
		senderID:    senderID,
		ticketID:    ticketID,
		logType:     logType,
		title:       title,
		message:     message,
		extraData:   extraData,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructLog(
	id uint,
	recipientID uint,
	senderID *uint,
	ticketID uint,
	logType Type,
	title, message string,
	extraData map[string]any,
	isRead, isSent bool,
	sentAt, readAt *time.Time,
	createdAt time.Time,
) (*Log, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification log ID cannot be zero")
	}
	if !logType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", logType)
	}

	return &Log{
		id:          id,
		recipientID: recipientID,
		senderID:    senderID,
		ticketID:    ticketID,
		logType:     logType,
		title:       title,
		message:     message,
		extraData:   extraData,
		isRead:      isRead,
		isSent:      isSent,
		sentAt:      sentAt,
		readAt:      readAt,
		createdAt:   createdAt,
	}, nil
}

func (l *Log) ID() uint {
	return l.id
}

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("notification log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification log ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Log) RecipientID() uint {
	return l.recipientID
}

func (l *Log) SenderID() *uint {
	return l.senderID
}

func (l *Log) TicketID() uint {
	return l.ticketID
}

func (l *Log) Type() Type {
	return l.logType
}

func (l *Log) Title() string {
	return l.title
}

func (l *Log) Message() string {
	return l.message
}

func (l *Log) ExtraData() map[string]any {
	return l.extraData
}

func (l *Log) IsRead() bool {
	return l.isRead
}

func (l *Log) IsSent() bool {
	return l.isSent
}

func (l *Log) SentAt() *time.Time {
	return l.sentAt
}

func (l *Log) ReadAt() *time.Time {
	return l.readAt
}

func (l *Log) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Log) MarkSent(at time.Time) {
	if l.isSent {
		return
	}
	l.isSent = true
	l.sentAt = &at
}

func (l *Log) MarkRead(at time.Time) {
	if l.isRead {
		return
	}
	l.isRead = true
	l.readAt = &at
}

package models

import "gorm.io/datatypes"

type NotificationLogModel struct {
	ID          uint   `gorm:"primaryKey"`
	RecipientID uint   `gorm:"not null;index"`
	SenderID    *uint  `gorm:"index"`
	TicketID    uint   `gorm:"not null;index"`
	Type        string `gorm:"size:30;not null"`
	Title       string `gorm:"size:200;not null"`
	Message     string `gorm:"type:text;not null"`
	ExtraData   datatypes.JSON
	IsRead      bool `gorm:"not null;default:false;index"`
	IsSent      bool `gorm:"not null;default:false"`
	SentAt      *int64
	ReadAt      *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

package models

type TicketModel struct {
	ID               uint   `gorm:"primaryKey"`
	Number           string `gorm:"uniqueIndex;size:50;not null"`
	Title            string `gorm:"size:200;not null"`
	Description      string `gorm:"type:text"`
	MenuID           *uint  `gorm:"index"`
	StatusID         uint   `gorm:"not null;index"`
	PriorityID       uint   `gorm:"not null;index"`
	CreatorID        uint   `gorm:"not null;index"`
	AssigneeID       *uint  `gorm:"index"`
	FirstResponseAt  *int64
	ResponseDeadline *int64
	DueDate          *int64
	ResolvedAt       *int64
	SLADueDate       *int64 `gorm:"index"`
	SLABreached      bool   `gorm:"not null;default:false"`
	IsEscalated      bool   `gorm:"not null;default:false"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketStatusModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:50;not null"`
	Code        string `gorm:"uniqueIndex;size:20;not null"`
	Description string `gorm:"size:200"`
	Type        string `gorm:"size:20;not null"`
	Weight      int    `gorm:"not null;default:0"`
	IsDefault   bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketStatusModel) TableName() string {
	return "ticket_statuses"
}

type TicketPriorityModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:50;not null"`
	Code        string `gorm:"uniqueIndex;size:20;not null"`
	Description string `gorm:"size:200"`
	Weight      int    `gorm:"not null;default:0"`
	Color       string `gorm:"size:7;not null"`
	SLAHours    *uint
	IsDefault   bool  `gorm:"not null;default:false"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketPriorityModel) TableName() string {
	return "ticket_priorities"
}

// TicketSequenceModel holds one row per day. The value is advanced
// under a row lock to hand out unique ticket numbers.
type TicketSequenceModel struct {
	Day       string `gorm:"primaryKey;size:8"`
	Value     uint   `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}

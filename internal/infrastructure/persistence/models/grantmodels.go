package models

type RoleGrantModel struct {
	ID        uint  `gorm:"primaryKey"`
	RoleID    uint  `gorm:"uniqueIndex:idx_role_menu;not null"`
	MenuID    uint  `gorm:"uniqueIndex:idx_role_menu;not null;index"`
	CanCreate bool  `gorm:"not null;default:false"`
	CanView   bool  `gorm:"not null;default:false"`
	CanUpdate bool  `gorm:"not null;default:false"`
	CanDelete bool  `gorm:"not null;default:false"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (RoleGrantModel) TableName() string {
	return "role_grants"
}

type UserGrantModel struct {
	ID           uint  `gorm:"primaryKey"`
	AccountID    uint  `gorm:"uniqueIndex:idx_account_menu;not null"`
	MenuID       uint  `gorm:"uniqueIndex:idx_account_menu;not null;index"`
	CanCreate    bool  `gorm:"not null;default:false"`
	CanView      bool  `gorm:"not null;default:false"`
	CanUpdate    bool  `gorm:"not null;default:false"`
	CanDelete    bool  `gorm:"not null;default:false"`
	AssignedByID *uint `gorm:"index"`
	AssignedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UserGrantModel) TableName() string {
	return "user_grants"
}

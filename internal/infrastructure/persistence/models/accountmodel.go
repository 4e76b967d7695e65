package models

type AccountModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"uniqueIndex;size:50;not null"`
	Email       string `gorm:"size:100"`
	PhoneNumber string `gorm:"size:10;not null;index"`
	Address     string `gorm:"size:200"`
	RoleID      *uint  `gorm:"index"`
	IsSuperuser bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

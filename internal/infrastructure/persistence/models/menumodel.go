package models

type MenuModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	Path         string `gorm:"uniqueIndex;size:200;not null"`
	CreatePath   string `gorm:"size:200"`
	ListPath     string `gorm:"size:200"`
	Icon         string `gorm:"size:50"`
	ParentID     *uint  `gorm:"index"`
	IsVisible    bool   `gorm:"not null;default:true"`
	DisplayOrder int    `gorm:"not null;default:0"`
	Depth        int    `gorm:"not null;default:0"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (MenuModel) TableName() string {
	return "menus"
}

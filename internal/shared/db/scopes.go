package db

import (
	"gorm.io/gorm"
)

// VisibleOnly is a GORM scope that filters menus down to the visible
// ones. Hidden menus stay addressable by path for permission checks
// but are excluded from assembled trees.
func VisibleOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_visible = ?", true)
	}
}

// UnreadOnly is a GORM scope that filters notification logs down to
// the unread ones.
func UnreadOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_read = ?", false)
	}
}

// SiblingOrder applies the canonical menu ordering: display order
// first, name as the tiebreak.
func SiblingOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC").Order("name ASC")
	}
}

package menu

import (
	"fmt"
	"time"
)

// Menu is a navigable resource in the menu hierarchy. Visibility is a
// soft hide: invisible menus keep their grants but are never listed.
type Menu struct {
	id           uint
	name         string
	path         string
	createPath   string
	listPath     string
	icon         string
	parentID     *uint
	visibility   bool
	displayOrder int
	depth        int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMenu(name, path string, parentID *uint) (*Menu, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("menu name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("menu name exceeds maximum length of 200 characters")
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("menu path is required")
	}
	if len(path) > 200 {
		return nil, fmt.Errorf("menu path exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Menu{
		name:       name,
		path:       path,
		parentID:   parentID,
		visibility: true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructMenu(
	id uint,
	name, path, createPath, listPath, icon string,
	parentID *uint,
	visibility bool,
	displayOrder, depth int,
	createdAt, updatedAt time.Time,
) (*Menu, error) {
	if id == 0 {
		return nil, fmt.Errorf("menu ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("menu name is required")
	}

	return &Menu{
		id:           id,
		name:         name,
		path:         path,
		createPath:   createPath,
		listPath:     listPath,
		icon:         icon,
		parentID:     parentID,
		visibility:   visibility,
		displayOrder: displayOrder,
		depth:        depth,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (m *Menu) ID() uint {
	return m.id
}

func (m *Menu) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("menu ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("menu ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Path() string {
	return m.path
}

func (m *Menu) CreatePath() string {
	return m.createPath
}

func (m *Menu) ListPath() string {
	return m.listPath
}

func (m *Menu) Icon() string {
	return m.icon
}

func (m *Menu) ParentID() *uint {
	return m.parentID
}

func (m *Menu) IsRoot() bool {
	return m.parentID == nil
}

func (m *Menu) IsVisible() bool {
	return m.visibility
}

func (m *Menu) DisplayOrder() int {
	return m.displayOrder
}

func (m *Menu) Depth() int {
	return m.depth
}

func (m *Menu) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Menu) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Menu) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("menu name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("menu name exceeds maximum length of 200 characters")
	}
	m.name = name
	m.updatedAt = time.Now()
	return nil
}

func (m *Menu) SetSubPaths(createPath, listPath string) {
	m.createPath = createPath
	m.listPath = listPath
	m.updatedAt = time.Now()
}

func (m *Menu) SetIcon(icon string) {
	m.icon = icon
	m.updatedAt = time.Now()
}

func (m *Menu) SetDisplayOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("display order must be non-negative")
	}
	m.displayOrder = order
	m.updatedAt = time.Now()
	return nil
}

func (m *Menu) Show() {
	m.visibility = true
	m.updatedAt = time.Now()
}

// Hide soft-deletes the menu: it stays in the tree and keeps its grants
// but disappears from every listing.
func (m *Menu) Hide() {
	m.visibility = false
	m.updatedAt = time.Now()
}

// SetParent reassigns the parent reference and the depth that the new
// chain implies. The caller is responsible for cycle checks and for
// cascading the depth change to descendants.
func (m *Menu) SetParent(parentID *uint, depth int) error {
	if parentID != nil && *parentID == m.id {
		return fmt.Errorf("a menu cannot be its own parent")
	}
	if depth < 0 {
		return fmt.Errorf("depth must be non-negative")
	}
	m.parentID = parentID
	m.depth = depth
	m.updatedAt = time.Now()
	return nil
}

func (m *Menu) setDepth(depth int) {
	m.depth = depth
	m.updatedAt = time.Now()
}

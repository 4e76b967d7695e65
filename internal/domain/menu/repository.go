package menu

import "context"

type Repository interface {
	Save(ctx context.Context, m *Menu) error
	Update(ctx context.Context, m *Menu) error

	// UpdateParent persists a re-parented menu together with every
	// descendant whose depth changed, inside one transaction. Readers
	// never observe a partially cascaded subtree.
	UpdateParent(ctx context.Context, m *Menu, changed []*Menu) error

	// Delete removes a menu. Menus that still have children are
	// protected and the delete is rejected.
	Delete(ctx context.Context, menuID uint) error

	GetByID(ctx context.Context, menuID uint) (*Menu, error)
	GetByPath(ctx context.Context, path string) (*Menu, error)

	// List returns menus in sibling order (display order, then name).
	// With onlyVisible set, hidden menus are skipped.
	List(ctx context.Context, onlyVisible bool) ([]*Menu, error)
	ListChildren(ctx context.Context, parentID uint) ([]*Menu, error)

	ExistsByName(ctx context.Context, name string) (bool, error)
	HasChildren(ctx context.Context, menuID uint) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

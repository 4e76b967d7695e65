package usecases

import "context"

// MenuTreeCache is the slice of the role-menu-tree cache the menu use
// cases need. Cached trees embed menu names, paths, icons, visibility
// and order, so every menu mutation clears the whole keyspace rather
// than guessing which role trees contain the menu.
type MenuTreeCache interface {
	DeleteAll(ctx context.Context) error
}

func invalidateTrees(ctx context.Context, cache MenuTreeCache) error {
	if cache == nil {
		return nil
	}
	return cache.DeleteAll(ctx)
}

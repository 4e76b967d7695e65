package usecases

import (
	"context"
	"time"
)

// MenuTreeCache caches assembled role-based menu trees keyed by role
// ID. User-override trees are never cached.
type MenuTreeCache interface {
	Get(ctx context.Context, roleID uint) ([]*MenuNode, bool, error)
	Set(ctx context.Context, roleID uint, tree []*MenuNode, ttl time.Duration) error
	Delete(ctx context.Context, roleID uint) error
	DeleteAll(ctx context.Context) error
}

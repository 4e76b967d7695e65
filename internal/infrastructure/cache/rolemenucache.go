package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"time"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/application/authz/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

// RedisRoleMenuCache caches assembled role menu trees as JSON blobs
// keyed by role ID. Entries expire after the configured TTL; grant
// writers invalidate the affected role synchronously.
type RedisRoleMenuCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisRoleMenuCache(client *redis.Client, logger logger.Interface) *RedisRoleMenuCache {
	return &RedisRoleMenuCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisRoleMenuCache) key(roleID uint) string {
	return fmt.Sprintf("%s%d", constants.CacheKeyRoleMenuPrefix, roleID)
}

func (c *RedisRoleMenuCache) Get(ctx context.Context, roleID uint) ([]*usecases.MenuNode, bool, error) {
	data, err := c.client.Get(ctx, c.key(roleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get menu tree from cache: %w", err)
	}

	var tree []*usecases.MenuNode
	if err := json.Unmarshal(data, &tree); err != nil {
		// Corrupt entry, drop it and treat as a miss.
		c.logger.Warnw("dropping corrupt menu tree cache entry", "role_id", roleID, "error", err)
		if delErr := c.client.Del(ctx, c.key(roleID)).Err(); delErr != nil {
			c.logger.Warnw("failed to drop corrupt cache entry", "role_id", roleID, "error", delErr)
		}
		return nil, false, nil
	}

	return tree, true, nil
}

func (c *RedisRoleMenuCache) Set(ctx context.Context, roleID uint, tree []*usecases.MenuNode, ttl time.Duration) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal menu tree: %w", err)
	}

	if err := c.client.Set(ctx, c.key(roleID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache menu tree: %w", err)
	}

	return nil
}

func (c *RedisRoleMenuCache) Delete(ctx context.Context, roleID uint) error {
	if err := c.client.Del(ctx, c.key(roleID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate menu tree cache: %w", err)
	}
	return nil
}

// DeleteAll removes every cached role tree. Used when the menu
// hierarchy itself changes, which affects all roles at once.
func (c *RedisRoleMenuCache) DeleteAll(ctx context.Context) error {
	pattern := constants.CacheKeyRoleMenuPrefix + "*"

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan menu tree cache keys: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete menu tree cache keys: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

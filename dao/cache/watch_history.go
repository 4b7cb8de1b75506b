package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// 用户观看过的视频集合
	watchHistoryKey = "user:watched:videos:%d"
	watchHistoryTTL = 7 * 24 * time.Hour
)

// WatchHistoryCache 观看历史的 Redis 集合镜像
// MySQL 里的 watch_history 表是事实来源，这里只做快速去重/查询，
// 缓存失败不影响主流程
type WatchHistoryCache struct {
	redis *redis.Client
}

func NewWatchHistoryCache(rdb *redis.Client) *WatchHistoryCache {
	return &WatchHistoryCache{redis: rdb}
}

func (c *WatchHistoryCache) key(userID int64) string {
	return fmt.Sprintf(watchHistoryKey, userID)
}

// Add 把视频加入用户的已看集合
func (c *WatchHistoryCache) Add(ctx context.Context, userID, videoID int64) error {
	key := c.key(userID)
	pipe := c.redis.Pipeline()
	pipe.SAdd(ctx, key, videoID)
	pipe.Expire(ctx, key, watchHistoryTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Has 用户是否看过该视频（缓存异常一律返回 false，由调用方回源）
func (c *WatchHistoryCache) Has(ctx context.Context, userID, videoID int64) bool {
	ok, err := c.redis.SIsMember(ctx, c.key(userID), videoID).Result()
	return err == nil && ok
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"libraryhub/internal/microservices/http-api/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BorrowListCache is a read-through cache of a user's borrow list.
// A nil *BorrowListCache (or one without a client) is a valid, disabled cache.
type BorrowListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func NewBorrowListCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *BorrowListCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &BorrowListCache{client: client, ttl: ttl, logger: logger}
}

func borrowListKey(userID int64) string {
	return fmt.Sprintf("borrowlist:user:%d", userID)
}

// borrowListVersionKey counts invalidations of a user's list.
func borrowListVersionKey(userID int64) string {
	return fmt.Sprintf("borrowlist:user:%d:v", userID)
}

var errStaleVersion = errors.New("borrow list version changed")

func (c *BorrowListCache) enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached list, the user's current version and whether the
// list was cached. On Redis errors the version is -1 so the caller's Set is skipped.
func (c *BorrowListCache) Get(ctx context.Context, userID int64) ([]models.BorrowRecord, int64, bool) {
	if !c.enabled() {
		return nil, -1, false
	}

	vals, err := c.client.MGet(ctx, borrowListKey(userID), borrowListVersionKey(userID)).Result()
	if err != nil {
		c.logger.Warn("borrow_cache_get_failed", "user_id", userID, "error", err)
		return nil, -1, false
	}

	var version int64
	if raw, ok := vals[1].(string); ok {
		version, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.logger.Warn("borrow_cache_version_invalid", "user_id", userID, "error", err)
			return nil, -1, false
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}

	var records []models.BorrowRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		c.logger.Warn("borrow_cache_decode_failed", "user_id", userID, "error", err)
		return nil, version, false
	}
	return records, version, true
}

// Set stores the list for ttl, but only while the user's version still equals version.
func (c *BorrowListCache) Set(ctx context.Context, userID int64, version int64, records []models.BorrowRecord) {
	if !c.enabled() || version < 0 {
		return
	}

	raw, err := json.Marshal(records)
	if err != nil {
		c.logger.Warn("borrow_cache_encode_failed", "user_id", userID, "error", err)
		return
	}

	listKey, versionKey := borrowListKey(userID), borrowListVersionKey(userID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listKey, raw, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("borrow_cache_set_skipped", "user_id", userID, "version", version)
	default:
		c.logger.Warn("borrow_cache_set_failed", "user_id", userID, "error", err)
	}
}

// Invalidate bumps the user's version and drops the cached list after a new borrow.
func (c *BorrowListCache) Invalidate(ctx context.Context, userID int64) {
	if !c.enabled() {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, borrowListVersionKey(userID))
		pipe.Del(ctx, borrowListKey(userID))
		return nil
	})
	if err != nil {
		c.logger.Warn("borrow_cache_invalidate_failed", "user_id", userID, "error", err)
	}
}

func (c *BorrowListCache) Close() error {
	if !c.enabled() {
		return nil
	}
	return c.client.Close()
}

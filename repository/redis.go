package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,     // Redis 地址（Docker 里用服务名或内网IP）
		Password: opts.Password, // 没有密码就留空
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

func stateKey(gameID string) string {
	return fmt.Sprintf("game:%s:state", gameID)
}

func eventsKey(gameID string) string {
	return fmt.Sprintf("game:%s:events", gameID)
}

func lockKey(gameID string) string {
	return fmt.Sprintf("lock:game:%s", gameID)
}

const gamesKey = "games"

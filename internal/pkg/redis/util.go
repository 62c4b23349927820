package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IncrWithExpire 计数加一，首次创建时设置过期时间
func IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, error) {
	n, err := Rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err = Rdb.Expire(ctx, key, expiration).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// ZIncrBy 有序集合成员加分
func ZIncrBy(ctx context.Context, key string, increment float64, member string) error {
	return Rdb.ZIncrBy(ctx, key, increment, member).Err()
}

// ZRevRangeWithScores 按分数倒序获取成员及分数
func ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error) {
	return Rdb.ZRevRangeWithScores(ctx, key, start, stop).Result()
}

// ZRemRangeByRank 移除有序集合中给定的排名区间的所有成员
func ZRemRangeByRank(ctx context.Context, key string, start, stop int64) error {
	return Rdb.ZRemRangeByRank(ctx, key, start, stop).Err()
}

// ZCard 有序集合成员数
func ZCard(ctx context.Context, key string) (int64, error) {
	return Rdb.ZCard(ctx, key).Result()
}

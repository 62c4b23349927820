package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/redis"
	"Folio/internal/pkg/util"
	"context"
)

type HotKeywordService interface {
	Record(ctx context.Context, keyword string) error
	Top(ctx context.Context, size int) ([]*dto.HotKeywordDTO, error)
	// Trim 只保留得分最高的 keep 个关键字
	Trim(ctx context.Context, keep int64) error
}

type hotKeywordServiceImpl struct{}

func NewHotKeywordService() HotKeywordService {
	return &hotKeywordServiceImpl{}
}

func (s *hotKeywordServiceImpl) Record(ctx context.Context, keyword string) error {
	keyword = util.NormalizeKeyword(keyword, consts.MaxHotKeywordLength)
	if keyword == "" || redis.GetRdbClient() == nil {
		return nil
	}
	return redis.ZIncrBy(ctx, consts.HotKeywordKey, 1, keyword)
}

func (s *hotKeywordServiceImpl) Top(ctx context.Context, size int) ([]*dto.HotKeywordDTO, error) {
	if size <= 0 {
		size = consts.DefaultHotKeywordSize
	}
	if size > consts.MaxHotKeywordSize {
		size = consts.MaxHotKeywordSize
	}
	// Redis 不可用时热搜榜为空
	if redis.GetRdbClient() == nil {
		return []*dto.HotKeywordDTO{}, nil
	}

	zs, err := redis.ZRevRangeWithScores(ctx, consts.HotKeywordKey, 0, int64(size-1))
	if err != nil {
		return nil, err
	}

	out := make([]*dto.HotKeywordDTO, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, &dto.HotKeywordDTO{Keyword: member, Score: z.Score})
	}
	return out, nil
}

func (s *hotKeywordServiceImpl) Trim(ctx context.Context, keep int64) error {
	if keep <= 0 || redis.GetRdbClient() == nil {
		return nil
	}
	n, err := redis.ZCard(ctx, consts.HotKeywordKey)
	if err != nil {
		return err
	}
	if n <= keep {
		return nil
	}
	return redis.ZRemRangeByRank(ctx, consts.HotKeywordKey, 0, -keep-1)
}

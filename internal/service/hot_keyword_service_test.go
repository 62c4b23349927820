package service

import (
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/redis"
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *mr.Miniredis {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	prev := redis.GetRdbClient()
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: m.Addr()}))
	t.Cleanup(func() { redis.SetClient(prev) })
	return m
}

func TestHotKeywordService_RecordAndTop(t *testing.T) {
	setupRedis(t)
	svc := NewHotKeywordService()
	ctx := context.Background()

	for _, q := range []string{"Java", " java ", "JAVA", "go", "go", "rust", "   "} {
		require.NoError(t, svc.Record(ctx, q))
	}

	top, err := svc.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "java", top[0].Keyword)
	require.Equal(t, float64(3), top[0].Score)
	require.Equal(t, "go", top[1].Keyword)

	all, err := svc.Top(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestHotKeywordService_Trim(t *testing.T) {
	m := setupRedis(t)
	svc := NewHotKeywordService()
	ctx := context.Background()

	for i, q := range []string{"a", "b", "c", "d"} {
		for j := 0; j <= i; j++ {
			require.NoError(t, svc.Record(ctx, q))
		}
	}

	require.NoError(t, svc.Trim(ctx, 2))
	members, err := m.ZMembers(consts.HotKeywordKey)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"c", "d"}, members)

	require.NoError(t, svc.Trim(ctx, 0))
	members, err = m.ZMembers(consts.HotKeywordKey)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestHotKeywordService_WithoutRedis(t *testing.T) {
	prev := redis.GetRdbClient()
	redis.SetClient(nil)
	t.Cleanup(func() { redis.SetClient(prev) })

	svc := NewHotKeywordService()
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, "java"))
	top, err := svc.Top(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, top)
	require.Empty(t, top)
	require.NoError(t, svc.Trim(ctx, 1))
}

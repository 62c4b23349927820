package job

import (
	"Folio/internal/pkg/logger"
	"Folio/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// HotKeywordTrimJob 定期裁剪热搜榜，只保留前 keep 名
type HotKeywordTrimJob struct {
	hotKeywordSvc service.HotKeywordService
	keep          int64
}

func NewHotKeywordTrimJob(hotKeywordSvc service.HotKeywordService, keep int64) *HotKeywordTrimJob {
	return &HotKeywordTrimJob{
		hotKeywordSvc: hotKeywordSvc,
		keep:          keep,
	}
}

func (s *HotKeywordTrimJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-hot-keyword-"+uuid.NewString())

	if err := s.hotKeywordSvc.Trim(ctx, s.keep); err != nil {
		log.ErrorContext(ctx, "trim hot keywords error", "keep", s.keep, "err", err)
		return
	}
	log.InfoContext(ctx, "trim hot keywords success", "keep", s.keep)
}

package cron

import (
	"Folio/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	hotKeywordSpec    string
	hotKeywordTrimJob *job.HotKeywordTrimJob
}

func NewCronManager(hotKeywordSpec string, hotKeywordTrimJob *job.HotKeywordTrimJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		hotKeywordSpec:    hotKeywordSpec,
		hotKeywordTrimJob: hotKeywordTrimJob,
	}
}

// RegisterJobs 注册定时任务，表达式为空时跳过
func (s *Manager) RegisterJobs() error {
	if s.hotKeywordSpec == "" {
		log.Warn("hot keyword trim job disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.hotKeywordSpec, s.hotKeywordTrimJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}

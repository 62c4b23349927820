package cron

import log "log/slog"

// InitCron 注册并启动定时任务
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	log.Info("Cron Jobs starting...", "jobs", mgr.Entries())
	mgr.Start()
	return nil
}

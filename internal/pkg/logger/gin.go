package logger

import (
	"Folio/internal/api/config"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin 访问日志与 Recovery，日志格式与 slog JSON 输出保持一致
func SetupGin(r *gin.Engine, cfg config.LogstashConfig) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/metrics"},
		Formatter: func(p gin.LogFormatterParams) string {
			return accessLine(p, cfg)
		},
	}))

	r.Use(gin.Recovery())
}

func accessLine(p gin.LogFormatterParams, cfg config.LogstashConfig) string {
	var traceID string
	if id, ok := p.Keys[TraceIDKey].(string); ok {
		traceID = id
	}
	if traceID == "" && p.Request != nil {
		traceID = TraceID(p.Request.Context())
	}

	level := "INFO"
	if p.StatusCode >= 500 {
		level = "ERROR"
	}

	return fmt.Sprintf(
		`{"time":%q,"level":%q,"msg":"GIN_ACCESS","trace_id":%q,"log_token":%q,"target_index":%q,"method":%q,"path":%q,"client_ip":%q,"status":%d,"size":%d,"latency":%q}`+"\n",
		p.TimeStamp.Format(time.RFC3339),
		level,
		traceID,
		cfg.Token,
		cfg.Index,
		p.Method,
		p.Path,
		p.ClientIP,
		p.StatusCode,
		p.BodySize,
		p.Latency.String(),
	)
}

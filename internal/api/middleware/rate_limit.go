package middleware

import (
	"Folio/internal/api/config"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/metrics"
	"Folio/internal/pkg/redis"
	"Folio/internal/pkg/response"
	"Folio/internal/service"
	log "log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 基于 Redis 的固定窗口限流，按客户端 IP 计数。
// Redis 未初始化或异常时放行。
func RateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	windowSeconds := int64(window / time.Second)

	return func(c *gin.Context) {
		if !cfg.Enable || cfg.Requests <= 0 || redis.GetRdbClient() == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		bucket := time.Now().Unix() / windowSeconds
		key := consts.RateLimitKey + ip + ":" + strconv.FormatInt(bucket, 10)

		n, err := redis.IncrWithExpire(ctx, key, window)
		if err != nil {
			log.WarnContext(ctx, "rate limit counter failed", "key", key, "err", err)
			c.Next()
			return
		}

		if n > int64(cfg.Requests) {
			metrics.RateLimitRejected.Inc()
			c.Header("Retry-After", strconv.FormatInt(windowSeconds, 10))
			response.Fail(c, response.TooManyRequests, service.ErrTooManyRequests.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

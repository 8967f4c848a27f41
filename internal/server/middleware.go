package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDKey はginコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// TraceIDMiddleware はリクエストごとにTraceIDを払い出す。
// クライアントがX-Trace-Idヘッダーを付与した場合はそれを引き継ぐ。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-Id")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(TraceIDKey, traceID)
		c.Header("X-Trace-Id", traceID)
		c.Next()
	}
}

// LoggingMiddleware はアクセスログを構造化形式で出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		traceID, _ := c.Get(TraceIDKey)
		slog.Info("request handled",
			"event_id", "HTTP_ACCESS",
			"trace_id", traceID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"src_ip", c.ClientIP(),
		)
	}
}

// RecoveryMiddleware はハンドラー内のパニックを500応答に変換する。
// 認可境界を越えてパニックを伝播させない。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				traceID, _ := c.Get(TraceIDKey)
				slog.Error("handler panic recovered",
					"event_id", "HTTP_PANIC",
					"trace_id", traceID,
					"panic", r,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					InternalServerError("unexpected error"))
			}
		}()
		c.Next()
	}
}

package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	redispkg "vehicle-finance.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time the lock is held while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long the cached response is kept
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the cached response when a request
// carries an Idempotency-Key already seen. Requests without the header
// pass through untouched; so do all requests when no Redis is wired.
func IdempotencyMiddleware(client *redispkg.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || client == nil {
			c.Next()
			return
		}

		storageKey := "idempotency:" + key
		ctx := c.Request.Context()

		val, err := client.Get(ctx, storageKey)
		if err == nil {
			if val == processingMarker {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"code":    "ERR_IDEMPOTENCY_CONFLICT",
					"message": "request already in progress",
				})
				return
			}

			// Replay the stored response body
			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(http.StatusOK, val)
			c.Abort()
			return
		}
		if !redispkg.IsNil(err) {
			// Redis unavailable: let the request through rather than block writes
			c.Next()
			return
		}

		locked, err := client.SetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !locked {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "ERR_IDEMPOTENCY_CONFLICT",
				"message": "request already in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			_ = client.Set(ctx, storageKey, w.body.String(), RetentionDuration)
		} else {
			// Drop the lock so the caller can retry
			_ = client.Del(ctx, storageKey)
		}
	}
}

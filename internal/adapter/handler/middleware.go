package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/auth"
)

const (
	principalKey = "principal"
	requestIDKey = "request_id"
)

// TokenParser turns a bearer token into the caller's principal.
type TokenParser interface {
	Parse(raw string) (domain.Principal, error)
}

func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request completed")
		case status >= http.StatusBadRequest:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}

func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token", Code: "UNAUTHORIZED"})
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRole) {
				c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: domain.ErrInvalidRole.Message, Code: domain.ErrInvalidRole.Code})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid token", Code: "UNAUTHORIZED"})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := principal(c)
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(domain.ErrNotAuthorized.Status, errorResponse{
			Error: domain.ErrNotAuthorized.Message,
			Code:  domain.ErrNotAuthorized.Code,
		})
	}
}

func principal(c *gin.Context) domain.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(domain.Principal); ok {
			return p
		}
	}
	return domain.Principal{}
}

// RateLimit limits each client IP to the formatted rate ("100-M"). Redis backs
// the counters when available so limits hold across instances.
func RateLimit(rate string, client *redis.Client, log logrus.FieldLogger) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore()
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   "rate_limiter:api",
			MaxRetry: 3,
		})
		if err != nil {
			return nil, err
		}
	}

	return mgin.NewMiddleware(limiter.New(store, r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: "too many requests", Code: "RATE_LIMITED"})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open on store errors
			log.WithError(err).Warn("rate limiter store failed")
			c.Next()
		}),
	), nil
}

func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}

var _ TokenParser = (*auth.TokenManager)(nil)

package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const defaultPrefix = "ratelimit"

// Limiter is a fixed-window request counter per client kept in Redis.
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
	now    func() time.Time
	logger zerolog.Logger
}

// New builds a limiter allowing limit requests per window for each client.
func New(client *redis.Client, limit int, window time.Duration, logger zerolog.Logger) *Limiter {
	if window < time.Second {
		window = time.Second
	}
	return &Limiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: defaultPrefix,
		now:    time.Now,
		logger: logger.With().Str("component", "ratelimit").Logger(),
	}
}

// Allow counts one request for key and reports whether it fits the window budget.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().Unix() / int64(l.window/time.Second)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("rate limit counter: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

// Middleware rejects clients over budget with the 429 envelope. Redis errors
// let the request through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := l.Allow(r.Context(), clientKey(r))
		if err != nil {
			logger := logging.FromContext(r.Context())
			logger.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			l.logger.Info().Str("client", clientKey(r)).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", fmt.Sprint(int(l.window/time.Second)))
			httperrors.RespondTooManyRequests(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

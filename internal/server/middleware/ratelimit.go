package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxLimiters ограничивает число отслеживаемых адресов
const maxLimiters = 10000

// RateLimiter ограничивает частоту запросов по IP на основе token bucket
type RateLimiter struct {
	limiters map[string]*limiterEntry
	logger   *slog.Logger
	cleanupC chan struct{}
	stopOnce sync.Once
	limit    rate.Limit
	burst    int
	idle     time.Duration
	mu       sync.Mutex
}

// limiterEntry limiter конкретного IP
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter создает новый rate limiter
// rps - допустимое число запросов в секунду, burst - размер всплеска.
// Limiters, не использовавшиеся дольше idle, удаляются.
func NewRateLimiter(rps float64, burst int, idle time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		logger:   logger,
		cleanupC: make(chan struct{}),
		limit:    rate.Limit(rps),
		burst:    burst,
		idle:     idle,
	}

	// Запускаем периодическую очистку старых limiters
	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные limiters для экономии памяти
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.removeIdle(now)
		case <-rl.cleanupC:
			return
		}
	}
}

// removeIdle удаляет limiters, не использовавшиеся дольше idle
func (rl *RateLimiter) removeIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, e := range rl.limiters {
		if now.Sub(e.lastAccess) > rl.idle {
			delete(rl.limiters, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа (обычно IP адрес)
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiterFor(key, time.Now()).Allow()
}

func (rl *RateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxLimiters {
			rl.evictOldest()
		}
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastAccess = now

	return e.limiter
}

// evictOldest удаляет самый давно использованный limiter
func (rl *RateLimiter) evictOldest() {
	var oldestKey string
	var oldest time.Time

	for key, e := range rl.limiters {
		if oldestKey == "" || e.lastAccess.Before(oldest) {
			oldestKey = key
			oldest = e.lastAccess
		}
	}

	if oldestKey != "" {
		delete(rl.limiters, oldestKey)
	}
}

// Middleware возвращает middleware, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !rl.Allow(key) {
				rl.logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает IP адрес клиента из запроса.
// Заголовки прокси разбирает chi middleware.RealIP, здесь используется RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	// trustForwardedFor брать IP из X-Forwarded-For (только за своим прокси)
	trustForwardedFor bool
	now               func() time.Time
	logger            Logger
}

// NewRateLimiter создает ограничитель: requestsPerMinute в среднем, burst подряд
func NewRateLimiter(requestsPerMinute, burst int, trustForwardedFor bool, logger Logger) *RateLimiter {
	return &RateLimiter{
		visitors:          make(map[string]*visitor),
		limit:             rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:             burst,
		trustForwardedFor: trustForwardedFor,
		now:               time.Now,
		logger:            logger,
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

// Sweep удаляет лимитеры IP, не присылавших запросов дольше idle, и возвращает их число
func (rl *RateLimiter) Sweep(idle time.Duration) int {
	cutoff := rl.now().Add(-idle)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Len количество отслеживаемых IP
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Middleware отвечает 429, когда лимит IP исчерпан
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, rl.trustForwardedFor)
			if !rl.limiter(ip).Allow() {
				rl.logger.Warn("%s %s - rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP адрес соединения; первый адрес X-Forwarded-For, только если заголовку доверяем
func clientIP(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

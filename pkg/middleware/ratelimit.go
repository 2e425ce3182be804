package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/metrics"
)

// RateLimitConfig holds per-client token bucket settings.
type RateLimitConfig struct {
	Enabled     bool    `toml:"enabled"`
	RPS         float64 `toml:"rps"`
	Burst       int     `toml:"burst"`
	IdleTimeout string  `toml:"idle_timeout"`
}

// RateLimitEnv maps rate limit config fields to environment variable names.
type RateLimitEnv struct {
	Enabled     string
	RPS         string
	Burst       string
	IdleTimeout string
}

// IdleTimeoutDuration parses IdleTimeout. Clients unseen for this long
// lose their bucket.
func (c *RateLimitConfig) IdleTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.IdleTimeout)
	if err != nil || d <= 0 {
		return 3 * time.Minute
	}
	return d
}

// Finalize applies defaults and environment variable overrides.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites fields from overlay. Enabled always applies; numeric
// fields only apply when positive.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	c.Enabled = overlay.Enabled
	if overlay.RPS > 0 {
		c.RPS = overlay.RPS
	}
	if overlay.Burst > 0 {
		c.Burst = overlay.Burst
	}
	if overlay.IdleTimeout != "" {
		c.IdleTimeout = overlay.IdleTimeout
	}
}

func (c *RateLimitConfig) loadDefaults() {
	if c.RPS <= 0 {
		c.RPS = 10
	}
	if c.Burst <= 0 {
		c.Burst = 20
	}
	if c.IdleTimeout == "" {
		c.IdleTimeout = "3m"
	}
}

func (c *RateLimitConfig) loadEnv(env *RateLimitEnv) {
	envBool(env.Enabled, &c.Enabled)
	if v, ok := lookupEnv(env.RPS); ok {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.RPS = rps
		}
	}
	if v, ok := lookupEnv(env.Burst); ok {
		if burst, err := strconv.Atoi(v); err == nil {
			c.Burst = burst
		}
	}
	if v, ok := lookupEnv(env.IdleTimeout); ok {
		c.IdleTimeout = v
	}
}

// Limiters holds one token bucket per client key. Buckets idle for longer
// than the configured timeout are swept on access, at most once per timeout.
type Limiters struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewLimiters creates an empty bucket set for cfg. now supplies the clock;
// nil uses time.Now.
func NewLimiters(cfg *RateLimitConfig, now func() time.Time) *Limiters {
	if now == nil {
		now = time.Now
	}
	return &Limiters{
		clients:   make(map[string]*client),
		rps:       rate.Limit(cfg.RPS),
		burst:     cfg.Burst,
		idle:      cfg.IdleTimeoutDuration(),
		now:       now,
		lastSweep: now(),
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiters) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.seen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *Limiters) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiters) sweep(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.seen) >= l.idle {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// RateLimit returns middleware enforcing a token bucket per client IP.
// Passes through when disabled. m may be nil.
func RateLimit(cfg *RateLimitConfig, m *metrics.Metrics) func(http.Handler) http.Handler {
	limiters := NewLimiters(cfg, nil)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			if !limiters.Allow(clientIP(r)) {
				if m != nil {
					m.RateLimitRejected.Inc()
				}
				w.Header().Set("Retry-After", "1")
				handlers.RespondJSON(w, http.StatusTooManyRequests, handlers.ErrorResponse{
					Detail: "Rate limit exceeded",
				})
				return
			}

			if m != nil {
				m.RateLimitAllowed.Inc()
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}

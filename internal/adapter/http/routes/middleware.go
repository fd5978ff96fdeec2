package routes

import (
	"net/http"
	"sync"
	"time"

	"pharma_fieldops/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func setMiddlewares(router *gin.Engine, cfg config.Config, log *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[app][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	origins := cfg.AllowedOrigins()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: len(origins) > 1 || origins[0] != "*",
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimitPerSecond > 0 {
		router.Use(rateLimit(newLimiterStore(cfg.RateLimitPerSecond), log))
	}
}

// limiterStore keeps one token bucket per client IP.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perSec   rate.Limit
	burst    int
}

func newLimiterStore(perSecond float64) *limiterStore {
	return &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		perSec:   rate.Limit(perSecond),
		burst:    max(int(perSecond), 1),
	}
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(s.perSec, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

func rateLimit(store *limiterStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip).Allow() {
			log.Warn("[app][routes] rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": "RATE_LIMITED", "message": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

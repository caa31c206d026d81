package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// attempts 单个 IP 在窗口内的尝试时间
type attempts struct {
	timestamps []time.Time
}

// prune 移除窗口外的记录，返回剩余次数
func (a *attempts) prune(cutoff time.Time) int {
	kept := a.timestamps[:0]
	for _, t := range a.timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	a.timestamps = kept
	return len(kept)
}

// loginLimiter 按 IP 的滑动窗口计数
// 过期数据在请求路径上按窗口周期清理，不依赖后台 goroutine
type loginLimiter struct {
	mu          sync.Mutex
	store       map[string]*attempts
	maxAttempts int
	window      time.Duration
	lastSweep   time.Time
}

func newLoginLimiter(maxAttempts int, window time.Duration) *loginLimiter {
	return &loginLimiter{
		store:       make(map[string]*attempts),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// allow 记录一次尝试，超过上限时返回 false
func (l *loginLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		for key, a := range l.store {
			if a.prune(cutoff) == 0 {
				delete(l.store, key)
			}
		}
		l.lastSweep = now
	}

	a, ok := l.store[ip]
	if !ok {
		a = &attempts{}
		l.store[ip] = a
	}
	if a.prune(cutoff) >= l.maxAttempts {
		return false
	}
	a.timestamps = append(a.timestamps, now)
	return true
}

// LoginRateLimit 登录接口限流中间件
// 每 IP 在 window 内最多 maxAttempts 次尝试，超过则返回 429
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	limiter := newLoginLimiter(maxAttempts, window)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many login attempts, please try again later",
			})
			return
		}
		c.Next()
	}
}

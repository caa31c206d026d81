package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 短窗口 200ms，最多 2 次
	router := gin.New()
	router.Use(LoginRateLimit(2, 200*time.Millisecond))
	router.POST("/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, 200, doReq("192.168.1.1").Code)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)
	w := doReq("192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many login attempts")

	// 不同 IP 互不影响
	assert.Equal(t, 200, doReq("192.168.1.2").Code)

	// 窗口过后恢复
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)
}

func TestAttemptsPrune(t *testing.T) {
	now := time.Now()
	a := &attempts{timestamps: []time.Time{now.Add(-time.Minute), now.Add(-time.Second), now}}
	assert.Equal(t, 2, a.prune(now.Add(-10*time.Second)))
	assert.Equal(t, 0, a.prune(now.Add(time.Second)))
}

func TestLoginLimiter_SweepsIdleIPs(t *testing.T) {
	l := newLoginLimiter(2, time.Minute)
	start := time.Now()

	assert.True(t, l.allow("10.0.0.1", start))
	assert.True(t, l.allow("10.0.0.2", start))
	assert.Len(t, l.store, 2)

	// 窗口过后的任意请求会清理空闲 IP
	assert.True(t, l.allow("10.0.0.3", start.Add(2*time.Minute)))
	assert.Len(t, l.store, 1)
	assert.Contains(t, l.store, "10.0.0.3")
}

func TestLoginLimiter_NoBackgroundGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 50; i++ {
		LoginRateLimit(10, time.Minute)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before)
}

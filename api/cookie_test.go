package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-api/config"
	"expense-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initCookieTestConfig(mode string) {
	config.GlobalConfig = &config.Config{
		Server: config.ServerConfig{Mode: mode},
	}
}

func TestGetCookieOptions(t *testing.T) {
	defer func() { config.GlobalConfig = nil }()

	initCookieTestConfig("debug")
	secure, sameSite := getCookieOptions()
	assert.False(t, secure)
	assert.Equal(t, http.SameSiteLaxMode, sameSite)

	initCookieTestConfig("release")
	secure, _ = getCookieOptions()
	assert.True(t, secure)

	// 未初始化配置
	config.GlobalConfig = nil
	secure, _ = getCookieOptions()
	assert.False(t, secure)
}

func TestSetTokenCookie(t *testing.T) {
	initCookieTestConfig("release")
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	expiresAt := time.Now().Add(15 * time.Minute)
	setTokenCookie(c, "abc.def.ghi", expiresAt)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, middleware.TokenCookie, ck.Name)
	assert.Equal(t, "abc.def.ghi", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.InDelta(t, 15*60, ck.MaxAge, 2)
}

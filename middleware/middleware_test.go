package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-api/auth"
	"expense-api/config"
	"expense-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initJWTTestConfig() {
	auth.InitJWT(&config.Config{JWT: config.JWTConfig{Secret: "test-jwt-secret-key"}})
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CookieAuth())
	router.GET("/protected", func(c *gin.Context) {
		user, ok := UserFromContext(c.Request.Context())
		if !ok || user.ID != GetCurrentUserID(c) {
			c.String(500, "context mismatch")
			return
		}
		c.String(200, "id:%s", user.ID)
	})
	return router
}

func TestCookieAuth(t *testing.T) {
	initJWTTestConfig()
	router := protectedRouter()

	do := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/protected", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 无 Cookie
	w := do(nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())

	// 无效 token
	assert.Equal(t, http.StatusUnauthorized, do(&http.Cookie{Name: TokenCookie, Value: "garbage"}).Code)

	// 过期 token
	expired, _, err := auth.GenerateToken(models.NewID(), -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(&http.Cookie{Name: TokenCookie, Value: expired}).Code)

	// 其他名称的 Cookie 不被接受
	id := models.NewID()
	token, _, err := auth.GenerateToken(id, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(&http.Cookie{Name: "session", Value: token}).Code)

	// 有效 token
	w = do(&http.Cookie{Name: TokenCookie, Value: token})
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "id:"+id, w.Body.String())
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", GetCurrentUserID(c))

	c.Set(currentUserKey, AuthenticatedUser{ID: "abc"})
	assert.Equal(t, "abc", GetCurrentUserID(c))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(200, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "boom")
}

package middleware

import (
	"context"
	"net/http"

	"expense-api/auth"

	"github.com/gin-gonic/gin"
)

// TokenCookie 认证 Cookie 名称
const TokenCookie = "token"

const currentUserKey = "currentUser"

type userCtxKey struct{}

// AuthenticatedUser 通过认证的请求方
type AuthenticatedUser struct {
	ID string
}

// CookieAuth 校验 token Cookie，失败时直接返回 401
func CookieAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			unauthorized(c)
			return
		}
		claims, err := auth.ParseToken(token)
		if err != nil {
			unauthorized(c)
			return
		}

		user := AuthenticatedUser{ID: claims.UserID}
		c.Set(currentUserKey, user)
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
}

// WithUser 将认证用户写入 context
func WithUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext 从 context 读取认证用户
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(userCtxKey{}).(AuthenticatedUser)
	return user, ok
}

// CurrentUser 获取当前请求的认证用户
func CurrentUser(c *gin.Context) (AuthenticatedUser, bool) {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(AuthenticatedUser); ok {
			return user, true
		}
	}
	return UserFromContext(c.Request.Context())
}

// GetCurrentUserID 未认证时返回空字符串
func GetCurrentUserID(c *gin.Context) string {
	user, _ := CurrentUser(c)
	return user.ID
}

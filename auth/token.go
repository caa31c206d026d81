package auth

import (
	"errors"
	"sync"
	"time"

	"expense-api/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid  = errors.New("invalid token")
	ErrSecretMissing = errors.New("jwt secret not initialized")
)

var (
	secretMu sync.RWMutex
	secret   []byte
)

// Claims 令牌载荷，id 为用户 ID
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// InitJWT 设置签名密钥
func InitJWT(cfg *config.Config) {
	secretMu.Lock()
	defer secretMu.Unlock()
	secret = []byte(cfg.JWT.Secret)
}

func signingKey() ([]byte, error) {
	secretMu.RLock()
	defer secretMu.RUnlock()
	if len(secret) == 0 {
		return nil, ErrSecretMissing
	}
	return secret, nil
}

// GenerateToken 签发 HS256 令牌
func GenerateToken(userID string, ttl time.Duration) (string, time.Time, error) {
	key, err := signingKey()
	if err != nil {
		return "", time.Time{}, err
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseToken 校验签名、算法和过期时间
func ParseToken(tokenString string) (*Claims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

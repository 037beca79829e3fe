package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"talent-portal-backend/internal/domain"
)

const denylistPrefix = "denylist:"

// Claims are the JWT claims issued at login. Subject holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenManager issues and verifies HS256 access tokens. Revocation is
// tracked in Redis keyed by jti; without Redis, revocation is a no-op.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	rdb    *goredis.Client
}

func NewTokenManager(secret string, ttl time.Duration, rdb *goredis.Client) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		rdb:    rdb,
	}
}

func (tm *TokenManager) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Revoke adds the token's jti to the denylist until its natural expiry.
func (tm *TokenManager) Revoke(ctx context.Context, tokenString string) error {
	claims, err := tm.Parse(tokenString)
	if err != nil {
		return err
	}
	if tm.rdb == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return tm.rdb.Set(ctx, denylistPrefix+claims.ID, "1", ttl).Err()
}

// IsRevoked reports whether the jti is denylisted. Fails open when Redis
// is unavailable so auth keeps working during an outage.
func (tm *TokenManager) IsRevoked(ctx context.Context, jti string) bool {
	if tm.rdb == nil || jti == "" {
		return false
	}
	n, err := tm.rdb.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talent-portal-backend/internal/domain"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, nil)

	user := &domain.User{ID: 42, Email: "jane@example.com", Role: domain.RoleManager}

	token, err := tm.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_ParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour, nil)
	verifier := NewTokenManager("secret-b", time.Hour, nil)

	token, err := issuer.Generate(&domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleCandidate})
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_ParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, nil)

	token, err := tm.Generate(&domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleCandidate})
	assert.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RevokeWithoutRedis(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, nil)

	token, err := tm.Generate(&domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleCandidate})
	assert.NoError(t, err)

	assert.NoError(t, tm.Revoke(context.Background(), token))
	assert.False(t, tm.IsRevoked(context.Background(), "anything"))
}

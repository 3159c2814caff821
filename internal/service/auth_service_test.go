package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academia-console-api/internal/models"
	"github.com/noah-isme/academia-console-api/pkg/config"
)

func TestAuthServiceIssueAndValidate(t *testing.T) {
	svc := NewAuthService(config.JWTConfig{Secret: "test-secret", Expiration: time.Hour})

	token, expiresAt, err := svc.IssueToken("user-1", models.RoleAdmin, "admin@academia.test", "Ana García")
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(config.JWTConfig{Secret: "secret-a", Expiration: time.Hour})
	verifier := NewAuthService(config.JWTConfig{Secret: "secret-b", Expiration: time.Hour})

	token, _, err := issuer.IssueToken("user-1", models.RoleStaff, "", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestAuthServiceRejectsExpiredToken(t *testing.T) {
	svc := NewAuthService(config.JWTConfig{Secret: "test-secret", Expiration: -time.Minute})

	token, _, err := svc.IssueToken("user-1", models.RoleStaff, "", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

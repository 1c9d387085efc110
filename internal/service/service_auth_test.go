package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

func newTestAuthService(duration time.Duration) AuthService {
	return NewAuthService(config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-shop-sync",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "  alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Owner)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	owner, err := parsed.GetOwner()
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)
}

func TestAuthService_CreateToken_BlankOwner(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	_, err := svc.CreateToken(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateToken_MisconfiguredKey(t *testing.T) {
	svc := NewAuthService(config.Auth{TokenIssuer: "go-shop-sync", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newTestAuthService(time.Hour)
	ctx := context.Background()

	otherIssuer := NewAuthService(config.Auth{TokenSignKey: "test-sign-key", TokenIssuer: "someone-else", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := otherIssuer.CreateToken(ctx, "alice")
	require.NoError(t, err)

	otherKey := NewAuthService(config.Auth{TokenSignKey: "other-key", TokenIssuer: "go-shop-sync", TokenDuration: time.Hour}, logger.Nop())
	forged, err := otherKey.CreateToken(ctx, "alice")
	require.NoError(t, err)

	for name, tokenString := range map[string]string{
		"garbage":      "not-a-jwt",
		"empty":        "",
		"wrong issuer": foreign.SignedString,
		"wrong key":    forged.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tokenString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

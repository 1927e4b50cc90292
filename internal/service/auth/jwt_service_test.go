package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/config"
	"github.com/tdw-edu/questions-api/internal/domain"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	svc := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))
	user := &domain.User{ID: 7, Username: "t1", IsAdmin: true}

	token, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "t1", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, strconv.Itoa(7), claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, Principal{UserID: 7, IsAdmin: true}, claims.Principal())
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	user := &domain.User{ID: 3, Username: "ana"}

	issue := func(secret string) string {
		token, err := newHMACJWTService(secret, lifetime, fixedClock(fixedTime)).
			GenerateToken(context.Background(), user)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{"valid token", issue(testSecret), fixedTime, nil},
		{"within clock skew", issue(testSecret), fixedTime.Add(lifetime + time.Minute), nil},
		{"expired token", issue(testSecret), fixedTime.Add(lifetime + time.Hour), ErrExpiredToken},
		{"issued in the future", issue(testSecret), fixedTime.Add(-time.Hour), ErrTokenNotYetValid},
		{"invalid signature", issue(wrongSecret), fixedTime, ErrInvalidToken},
		{"malformed token", "this.is.not.a.valid.jwt.token", fixedTime, ErrInvalidToken},
		{"empty token", "", fixedTime, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newHMACJWTService(testSecret, lifetime, fixedClock(tt.now))

			claims, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), claims.UserID)
			assert.False(t, claims.IsAdmin)
		})
	}
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := jwtCustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newHMACJWTService(testSecret, time.Hour, fixedClock(now))
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRequiresExpiry(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtCustomClaims{UserID: 1}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newHMACJWTService(testSecret, time.Hour, time.Now)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

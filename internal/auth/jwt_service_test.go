package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID, "test@example.com", "employer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "employer", claims.Role)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken(uuid.New(), "test@example.com", "jobseeker")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken(uuid.New(), "test@example.com", "admin")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenHasNoID(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken(uuid.New(), "test@example.com", "admin")
	assert.NoError(t, err)

	_, err = service.ExtractTokenID(token)
	assert.Error(t, err)
}

func TestResetToken(t *testing.T) {
	raw, hash, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.Len(t, raw, 64)
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashResetToken(raw))

	raw2, hash2, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}

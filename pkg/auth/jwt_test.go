package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateJWT("admin", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Login)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Garbage token",
			token: "not-a-token",
		},
		{
			name: "Expired token",
			token: func() string {
				token, _ := service.GenerateJWT("admin", time.Now().Add(-time.Hour))
				return token
			}(),
		},
		{
			name: "Wrong secret",
			token: func() string {
				other := NewJWTService("other-secret")
				token, _ := other.GenerateJWT("admin", time.Now().Add(time.Hour))
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

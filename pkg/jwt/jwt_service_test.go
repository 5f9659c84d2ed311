package jwt

import (
	"Petopia-Admin/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenOperatorRoundTrip(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "PETOPIA"}

	token := service.GenerateTokenOperator("op-1", domain.RoleOperator)
	require.NotEmpty(t, token)

	id, role, err := service.GetOperatorIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "op-1", id)
	assert.Equal(t, domain.RoleOperator, role)
}

func TestGetOperatorIDByTokenWrongKey(t *testing.T) {
	issuing := &jwtService{secretKey: "issuing-secret", issuer: "PETOPIA"}
	verifying := &jwtService{secretKey: "other-secret", issuer: "PETOPIA"}

	token := issuing.GenerateTokenOperator("op-1", domain.RoleOperator)

	_, _, err := verifying.GetOperatorIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetOperatorIDByTokenExpired(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "PETOPIA"}

	claims := jwtOperatorClaim{
		"op-1",
		domain.RoleOperator,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(service.secretKey))
	require.NoError(t, err)

	_, _, err = service.GetOperatorIDByToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetOperatorIDByTokenGarbage(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "PETOPIA"}

	_, _, err := service.GetOperatorIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

package jwt

import (
	"testing"
	"time"

	"lunch-chooser/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "LUNCHCHOOSER"}
}

func TestTokenRoundTrip(t *testing.T) {
	service := testService()

	token := service.GenerateTokenUser("user-123")
	require.NotEmpty(t, token)

	userID, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token := testService().GenerateTokenUser("user-123")

	other := &jwtService{secretKey: "another-secret", issuer: "LUNCHCHOOSER"}
	_, err := other.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	_, err := testService().GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	service := testService()

	claims := jwtUserClaim{
		"user-123",
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(service.secretKey))
	require.NoError(t, err)

	_, err = service.GetUserIDByToken(signed)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

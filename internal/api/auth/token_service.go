package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService creates and validates the HS256 access tokens used by
// the API. Tokens are stateless; logout is purely client-side.
type TokenService struct {
	secretKey []byte

	// AccessTokenDuration applies to normal logins. RememberMeDuration
	// applies when the client asks to stay signed in.
	AccessTokenDuration time.Duration
	RememberMeDuration  time.Duration
}

// NewTokenService creates a token service. expiryMinutes configures the
// normal access token lifetime.
func NewTokenService(secretKey string, expiryMinutes int) *TokenService {
	return &TokenService{
		secretKey:           []byte(secretKey),
		AccessTokenDuration: time.Duration(expiryMinutes) * time.Minute,
		RememberMeDuration:  30 * 24 * time.Hour,
	}
}

// CreateAccessToken issues a signed token for the user ID.
func (ts *TokenService) CreateAccessToken(userID int64, rememberMe bool) (string, time.Time, error) {
	duration := ts.AccessTokenDuration
	if rememberMe {
		duration = ts.RememberMeDuration
	}
	expiresAt := time.Now().Add(duration)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    "diksiai",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies signature and expiry and returns the user ID
// from the subject claim.
func (ts *TokenService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secretKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	return userID, nil
}

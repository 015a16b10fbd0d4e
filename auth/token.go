package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"melodex/models"
)

// TokenTTL is the enforced token lifetime.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("token verification failed")
	ErrUserNotFound = errors.New("user not found")
)

// IssueToken signs an HS256 token carrying the user's id and email.
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

// ParseToken verifies the signature and expiry of an issued token and
// returns its claims. All failure causes collapse into ErrInvalidToken so
// responses never reveal which check failed.
func (s *Service) ParseToken(tokenStr string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

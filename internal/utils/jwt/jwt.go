package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crewchat-dev/crewchat/internal/domain"
	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
)

type JwtService interface {
	NewToken(uid domain.UserId) (string, error)
	DecodeToken(jwtStr string) (domain.UserId, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(uid domain.UserId) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = uid
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// DecodeToken verifies the signature and expiry and returns the user id.
func (j *Jwt) DecodeToken(jwtStr string) (domain.UserId, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, &internal_errors.AuthError{Message: "Invalid access token"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, &internal_errors.AuthError{Message: "Invalid access token"}
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, &internal_errors.AuthError{Message: "Invalid access token"}
	}
	return domain.UserId(uid), nil
}

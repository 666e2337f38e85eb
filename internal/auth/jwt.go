package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "langassess"

var jwtSecret []byte

var ErrInvalidToken = errors.New("invalid pass token")

// PassClaims is carried by the token handed out to a candidate who passed an assessment.
type PassClaims struct {
	AttemptID string  `json:"attempt_id"`
	Score     float64 `json:"score"`
	jwt.RegisteredClaims
}

func Init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET must be set")
	}
	jwtSecret = []byte(secret)
}

func GeneratePassToken(attemptID string, score float64, duration time.Duration) (string, error) {
	now := time.Now()
	claims := PassClaims{
		AttemptID: attemptID,
		Score:     score,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   attemptID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidatePassToken(tokenStr string) (*PassClaims, error) {
	claims := &PassClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.AttemptID == "" {
		return nil, fmt.Errorf("%w: missing attempt", ErrInvalidToken)
	}
	return claims, nil
}

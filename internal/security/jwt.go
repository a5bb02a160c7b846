package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the identity a verified token resolves to.
type Claims struct {
	UserID int64
	Email  string
}

// JwtProvider signs and verifies the HS256 access tokens issued at login.
type JwtProvider struct {
	secret []byte
	expiry time.Duration
}

func NewJwtProvider(secret string, expiry time.Duration) *JwtProvider {
	return &JwtProvider{secret: []byte(secret), expiry: expiry}
}

// Generate issues a signed token bound to the user's id and email.
func (p *JwtProvider) Generate(userID int64, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(p.expiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses the token string and returns the claims it carries.
func (p *JwtProvider) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Numeric JSON claims come back as float64.
	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: int64(userID), Email: email}, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthModule signs and validates the bearer tokens the rules API accepts
type AuthModule struct {
	JWTSecret string
}

func NewAuthModule(JWTSecret string) *AuthModule {
	return &AuthModule{JWTSecret: JWTSecret}
}

// GenerateJWT mints a token carrying the user's id and role
func (a *AuthModule) GenerateJWT(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.JWTSecret))
}

// ValidateTokenJWT verifies a token and returns its user id and role
func (a *AuthModule) ValidateTokenJWT(token string) (string, string, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.JWTSecret), nil
	})
	if err != nil {
		return "", "", err
	}

	if claims, ok := parsedToken.Claims.(jwt.MapClaims); ok && parsedToken.Valid {
		userID, ok := claims["user_id"].(string)
		if !ok {
			return "", "", errors.New("invalid user_id in token")
		}
		role, _ := claims["role"].(string)
		return userID, role, nil
	}

	return "", "", errors.New("invalid token")
}

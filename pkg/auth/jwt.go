package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/talmaprime/teaops/internal/domain"
)

type JWTServiceInterface interface {
	GenerateJWT(userID int, role domain.Role) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID int         `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewJWTService(secret string, tokenTTL time.Duration) *JWTService {
	return &JWTService{secretKey: []byte(secret), tokenTTL: tokenTTL}
}

func (s *JWTService) GenerateJWT(userID int, role domain.Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
			Issuer:    "teaops",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != "teaops" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

package jwt

import (
	"cooknextdoor/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

var ErrMissingSecret = errors.New("JWT_SECRET is not configured")

// NewJWTService fails when no signing secret is configured. There is
// deliberately no default secret.
func NewJWTService(secretKey string) (JWTService, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    "COOKNEXTDOOR",
	}, nil
}

func (j *jwtService) GenerateTokenUser(userID string) (string, error) {
	claims := jwtUserClaim{
		userID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	return claims.UserID, nil
}

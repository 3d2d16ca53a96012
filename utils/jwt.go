package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
)

type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an HS256 token carrying the principal's id and role.
func GenerateJWT(secret []byte, id string, role ownership.Role) (string, error) {
	claims := &Claims{
		UserID: id,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "unitunes",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateJWT parses a token and returns the principal it carries.
func ValidateJWT(secret []byte, tokenStr string) (ownership.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return ownership.Principal{}, err
	}
	if !token.Valid {
		return ownership.Principal{}, errors.New("invalid token")
	}

	p := ownership.Principal{ID: claims.UserID, Role: ownership.Role(claims.Role)}
	if !p.Role.Valid() {
		return ownership.Principal{}, errors.New("token carries unknown role")
	}
	return p, nil
}

package util

import (
	"hr_console/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	OperatorID uint               `json:"operator_id"`
	Role       model.OperatorRole `json:"role"`
	Email      string             `json:"email"`
	jwt.RegisteredClaims
}

func GenerateJWT(op *model.Operator, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		OperatorID: op.ID,
		Role:       op.Role,
		Email:      op.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func GetOperatorFromContext(c *gin.Context) *Claims {
	op, exists := c.Get("operator")
	if !exists {
		return nil
	}
	claims, ok := op.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

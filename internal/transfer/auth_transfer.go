package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

package models

import "github.com/golang-jwt/jwt/v5"

// JwtCustomClaims carries the phone number the external OTP provider has
// verified. The identity middleware resolves it to a user row.
type JwtCustomClaims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User is a club member. Rating is the club ladder rating, adjusted after
// tournament rounds.
type User struct {
	ID       int
	Name     string
	Login    string
	Password string
	Rating   int
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData bundles everything a successful register/login hands back.
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

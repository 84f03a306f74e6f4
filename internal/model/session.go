package model

import "time"

// Session stores a hashed refresh token keyed by session id; the plaintext
// token only ever lives in the client cookie.
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

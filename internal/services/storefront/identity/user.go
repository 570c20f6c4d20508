package identity

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the account returned by the auth backend.
type User struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           *string `json:"role,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Location       *string `json:"location,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	AccountType    *string `json:"account_type,omitempty"`
}

// FirstName returns the first word of the user's name, or "User".
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return "User"
	}
	return fields[0]
}

// TokenExpiry reads the exp claim of a JWT access token without verifying
// it. Opaque tokens and tokens without exp report ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

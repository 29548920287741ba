package helpers

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is what a bearer token carries about its user.
type Claims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ID parses the user id embedded in the token.
func (c *Claims) ID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

func (c *Claims) IsOwner(userID uuid.UUID) bool {
	return c.UserID == userID.String()
}

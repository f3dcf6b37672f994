package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IsElevated reports whether the token belongs to a manager or admin.
func (c *Claims) IsElevated() bool {
	return c.Role == "admin" || c.Role == "manager"
}

// IsAdmin reports whether the token belongs to an admin.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

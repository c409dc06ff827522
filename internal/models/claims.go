package models

import "github.com/golang-jwt/jwt/v5"

type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsGodAdmin reports whether the claims belong to a platform admin.
func (c *UserClaims) IsGodAdmin() bool {
	return c.Role == RoleGodAdmin
}

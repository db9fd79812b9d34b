package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionHookRead  = "hook:read"
	PermissionHookWrite = "hook:write"
)

// AdminClaims are the JWT claims required by the hook's admin surface
// (blacklisting users, pausing the hook).
type AdminClaims struct {
	jwt.RegisteredClaims
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission.
func (c *AdminClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

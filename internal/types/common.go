package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
	ClaimKey     = "claim"
	UserCtxName  = "user"
)

// UserContext is the authenticated caller, decoded from the token claim.
type UserContext struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// CanActFor reports whether the caller may act on behalf of username.
func (u UserContext) CanActFor(username string) bool {
	return u.IsAdmin || (u.Username != "" && u.Username == username)
}

// Claims returns the token claim payload for u.
func (u UserContext) Claims() map[string]interface{} {
	return map[string]interface{}{
		"username": u.Username,
		"isAdmin":  u.IsAdmin,
	}
}

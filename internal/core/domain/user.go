package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a record in the user directory. The password is an opaque
// credential string compared by exact equality; it never appears in JSON
// output.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeRole is the single place roles are defaulted: anything other than
// "admin" collapses to "user". Applied when a record is created and when a
// session is minted, never per-handler.
func NormalizeRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

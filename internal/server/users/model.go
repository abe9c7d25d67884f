package users

import "time"

// DefaultRole is assigned when a sign-up request omits the role field.
const DefaultRole = "user"

// User is the persisted record. Password holds the bcrypt hash, never the
// plaintext, and never leaves the service layer: every outward path goes
// through Sanitized.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}

// SanitizedUser is the client-facing view of a user with the password hash
// stripped.
type SanitizedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns the non-secret view of the user.
func (u *User) Sanitized() *SanitizedUser {
	return &SanitizedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

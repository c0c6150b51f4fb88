package domain

import "strings"

// Role distinguishes administrators from regular staff. Permissions are stored but not enforced.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// NormalizeRole maps input onto a known role; anything unrecognised becomes staff.
func NormalizeRole(raw string) Role {
	if strings.EqualFold(strings.TrimSpace(raw), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleStaff
}

// User is a panel account. Password is kept as entered unless hashing is switched on.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Password    string   `json:"password,omitempty"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// Public strips the password so the record can leave the process.
func (u User) Public() User {
	u.Password = ""
	u.Permissions = append([]string{}, u.Permissions...)
	return u
}

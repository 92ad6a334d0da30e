package auth

import "github.com/caffeine-junky/jobconnect/internal/domain"

// Role selects which account store a login is checked against. The zero
// value is not a role.
type Role string

const (
	RoleAdmin      = Role(domain.RoleAdmin)
	RoleClient     = Role(domain.RoleClient)
	RoleTechnician = Role(domain.RoleTechnician)
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleClient, RoleTechnician:
		return r, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

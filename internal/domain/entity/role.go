package entity

// Role discriminates the two kinds of account sharing the users table.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// ParseRole converts raw input into a Role; ok is false for anything else.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	return role, role.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleProfessional:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

package controllers

const (
	RoleStudent   = "Student"
	RoleProfessor = "Professor"
	RoleSecretary = "Secretary"
	RoleAdmin     = "Admin"
)

var allowedRoles = map[string]struct{}{
	RoleStudent:   {},
	RoleProfessor: {},
	RoleSecretary: {},
	RoleAdmin:     {},
}

func IsValidRole(role string) bool {
	_, ok := allowedRoles[role]
	return ok
}

package utils

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ValidRoles = []string{RoleUser, RoleAdmin}

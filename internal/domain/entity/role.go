package entity

// Role names as returned by the remote API in users.role.
const (
	RoleAdmin      = "admin"
	RoleMedecin    = "medecin"
	RoleSecretaire = "secretaire"
	RolePatient    = "patient"
)

// Roles lists every role the console knows how to render.
var Roles = []string{RoleAdmin, RoleMedecin, RoleSecretaire, RolePatient}

// IsKnownRole reports whether role is one of Roles.
func IsKnownRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

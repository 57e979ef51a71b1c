package entity

import "strings"

// User is the identity record shared by every role.
type User struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FullName renders "Prenom Nom", skipping empty parts.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(u.Prenom) + " " + strings.TrimSpace(u.Nom))
}

func (u *User) IsAdmin() bool      { return u != nil && u.Role == RoleAdmin }
func (u *User) IsMedecin() bool    { return u != nil && u.Role == RoleMedecin }
func (u *User) IsSecretaire() bool { return u != nil && u.Role == RoleSecretaire }
func (u *User) IsPatient() bool    { return u != nil && u.Role == RolePatient }

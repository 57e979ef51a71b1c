package entity

// Session is the server side of a console login: the upstream bearer
// token and the user it was issued for.
type Session struct {
	ID          string `json:"id"`
	AccessToken string `json:"-"`
	User        User   `json:"user"`
}

func (s *Session) IsAdmin() bool      { return s != nil && s.User.IsAdmin() }
func (s *Session) IsMedecin() bool    { return s != nil && s.User.IsMedecin() }
func (s *Session) IsSecretaire() bool { return s != nil && s.User.IsSecretaire() }
func (s *Session) IsPatient() bool    { return s != nil && s.User.IsPatient() }

// HasRole reports whether the session user holds one of roles.
func (s *Session) HasRole(roles ...string) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}

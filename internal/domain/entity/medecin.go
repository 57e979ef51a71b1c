package entity

// Medecin extends a User with the doctor's specialty.
type Medecin struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"user_id"`
	SpecialiteID int64       `json:"specialite_id"`
	NumeroOrdre  string      `json:"numero_ordre,omitempty"`
	User         *User       `json:"user,omitempty"`
	Specialite   *Specialite `json:"specialite,omitempty"`
}

// DisplayName is the doctor's name as shown in lists and calendars.
func (m *Medecin) DisplayName() string {
	if m == nil || m.User == nil {
		return ""
	}
	return "Dr " + m.User.FullName()
}

// SpecialiteNom returns the eager-loaded specialty name, if any.
func (m *Medecin) SpecialiteNom() string {
	if m == nil || m.Specialite == nil {
		return ""
	}
	return m.Specialite.Nom
}

// DepartementID resolves the department through the specialty.
func (m *Medecin) DepartementID() int64 {
	if m == nil || m.Specialite == nil {
		return 0
	}
	return m.Specialite.DepartementID
}

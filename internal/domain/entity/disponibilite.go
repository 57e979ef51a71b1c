package entity

// Disponibilite is an open window in a doctor's agenda. Recurring windows
// carry a weekday, one-off windows a date.
type Disponibilite struct {
	ID          int64    `json:"id"`
	MedecinID   int64    `json:"medecin_id"`
	Date        string   `json:"date,omitempty"`
	JourSemaine string   `json:"jour_semaine,omitempty"`
	HeureDebut  string   `json:"heure_debut"`
	HeureFin    string   `json:"heure_fin"`
	Recurrent   bool     `json:"recurrent"`
	Medecin     *Medecin `json:"medecin,omitempty"`
}

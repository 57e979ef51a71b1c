package entity

type Secretaire struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	NumeroEmploye string `json:"numero_employe"`
	User          *User  `json:"user,omitempty"`
}

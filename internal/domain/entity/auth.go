package entity

// AuthGrant is what /login and /register hand back once reconciled:
// the bearer token and the user it belongs to.
type AuthGrant struct {
	AccessToken string
	User        User
}

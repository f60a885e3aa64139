package domain

// User is the persisted account record. PasswordHash holds the bcrypt hash;
// plaintext passwords never leave the auth service.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// Identity is the client-visible echo of a signed-in user. It never carries
// credential material.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity returns the credential-free view of the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}

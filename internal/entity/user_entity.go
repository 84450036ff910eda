package entity

// UserProfile is the optional local profile shown in the UI header. There is
// no account system behind it.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// internal/core/model/user.go
package model

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthenticationUser carries the stored password hash. It is only handled by
// the authentication flow and never serialized outward.
type AuthenticationUser struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
}

func (u AuthenticationUser) User() User {
	return User{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserCreation is the transient registration payload; the plain password is
// hashed before anything is persisted.
type UserCreation struct {
	Username string
	Email    string
	Password string
}

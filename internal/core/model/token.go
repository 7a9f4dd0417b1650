// internal/core/model/token.go
package model

// Token is the credential returned to a client after login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenData is the decoded content of a bearer token.
type TokenData struct {
	Username string
}

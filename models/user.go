// Package models defines data structures used across the application.
// File: models/user.go
package models

// ----------------------- user model -----------------------

// User is the authenticated staff identity echoed by the backend on login
// and on session rehydration.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// ----------------------- credentials -----------------------

// Credentials is the login form payload sent to POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

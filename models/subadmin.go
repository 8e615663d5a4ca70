// Package models file: models/subadmin.go
package models

// ----------------------- sub-admin model -----------------------

// SubAdmin is a delegated administrator account. Password is write-only: it
// is sent on creation and never echoed back by the backend.
type SubAdmin struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// Validate checks required-field presence for the "add sub-admin" form.
func (s SubAdmin) Validate() error {
	if s.Name == "" || s.Email == "" || s.Username == "" || s.Password == "" {
		return ErrMissingFields
	}
	return nil
}

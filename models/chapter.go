// Package models file: models/chapter.go
package models

// ----------------------- member roles -----------------------

// A chapter member holds exactly one of these two roles.
const (
	RoleMember    = "member"
	RoleCommittee = "committee"
)

// ValidRole reports whether role is one of the two supported member roles.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleCommittee
}

// ----------------------- member model -----------------------

// Member is a person attached to a chapter.
type Member struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // "member" or "committee"
}

// ----------------------- chapter model -----------------------

// Chapter represents a regional chapter with its roster and events.
type Chapter struct {
	ID              string   `json:"id"`
	ChapterName     string   `json:"chapterName"`
	Zone            string   `json:"zone"`
	Description     string   `json:"description"`
	ChapterLeadName string   `json:"chapterLeadName"`
	Members         []Member `json:"members"`
	Events          []Event  `json:"events"`
	Image           string   `json:"image,omitempty"` // URL assigned by the backend
}

// ----------------------- chapter form -----------------------

// ChapterForm carries the fields of the "add chapter" form before they are
// encoded for the backend.
type ChapterForm struct {
	ChapterName     string
	Zone            string
	Description     string
	ChapterLeadName string
	Members         []Member
}

// Validate checks required-field presence. The backend owns every other rule.
func (f ChapterForm) Validate() error {
	if f.ChapterName == "" || f.Zone == "" || f.ChapterLeadName == "" {
		return ErrMissingFields
	}
	return nil
}

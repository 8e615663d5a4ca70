// Package models file: models/analytics.go
package models

// ----------------------- membership stats -----------------------

// MembershipStats is the aggregate snapshot returned by the membership API.
type MembershipStats struct {
	TotalMembers    int     `json:"totalMembers"`
	ActiveMembers   int     `json:"activeMembers"`
	ExpiredMembers  int     `json:"expiredMembers"`
	TotalRevenue    float64 `json:"totalRevenue"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	NewThisMonth    int     `json:"newThisMonth"`
	RenewalsPending int     `json:"renewalsPending"`
}

// ----------------------- transactions -----------------------

// Transaction is one membership payment record.
type Transaction struct {
	ID         string  `json:"_id"`
	MemberName string  `json:"memberName"`
	Email      string  `json:"email"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	Date       string  `json:"date"`
	Plan       string  `json:"plan"`
}

// ----------------------- member directory -----------------------

// DirectoryMember is an entry in the full members directory, richer than the
// chapter-level Member roster.
type DirectoryMember struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType"`
	JoinedOn       string `json:"joinedOn"`
	ExpiresOn      string `json:"expiresOn"`
	Business       string `json:"business"`
	Country        string `json:"country"`
}

// MatchesSearch reports whether the member matches a directory search term.
// The term is compared case-insensitively against name, email, phone and
// country, mirroring the directory screen's filter.
func (m DirectoryMember) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return containsFold(m.Name, term) ||
		containsFold(m.Email, term) ||
		containsFold(m.Phone, term) ||
		containsFold(m.Country, term)
}

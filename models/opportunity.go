// Package models file: models/opportunity.go
package models

// ----------------------- opportunity model -----------------------

// Opportunity is a volunteering or partnership opening. The backend keys
// opportunities by Mongo-style "_id" rather than "id".
type Opportunity struct {
	ID                 string `json:"_id"`
	OppName            string `json:"oppName"`
	OppDate            string `json:"oppDate"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	MembershipRequired bool   `json:"membershipRequired"`
	Image              string `json:"image,omitempty"`
}

// ----------------------- opportunity form -----------------------

// OpportunityForm carries the "add opportunity" form fields.
type OpportunityForm struct {
	OppName            string
	OppDate            string
	Location           string
	Description        string
	MembershipRequired bool
}

// Validate checks required-field presence before submission.
func (f OpportunityForm) Validate() error {
	if f.OppName == "" || f.OppDate == "" || f.Location == "" {
		return ErrMissingFields
	}
	return nil
}

// Package services file: services/opportunity_service.go
package services

import (
	"strconv"

	"memberhub/models"
)

// OpportunityServiceInterface is the gateway for opportunity postings.
type OpportunityServiceInterface interface {
	List(cookie string) ([]models.Opportunity, error)
	Create(cookie string, form models.OpportunityForm, image *FileUpload) (models.Opportunity, error)
}

// OpportunityService implements OpportunityServiceInterface over the shared
// client.
type OpportunityService struct {
	client *APIClient
}

// NewOpportunityService creates an OpportunityService.
func NewOpportunityService(client *APIClient) *OpportunityService {
	return &OpportunityService{client: client}
}

// List fetches all opportunities from GET /sa/get-opp.
func (s *OpportunityService) List(cookie string) ([]models.Opportunity, error) {
	var envelope struct {
		Opportunities []models.Opportunity `json:"opportunities"`
	}
	if err := s.client.getJSON(s.client.BackendURL+"/sa/get-opp", cookie, &envelope); err != nil {
		return nil, err
	}
	return envelope.Opportunities, nil
}

// Create posts the opportunity form (multipart, image optional) to
// /sa/createOpp and returns the created record.
func (s *OpportunityService) Create(cookie string, form models.OpportunityForm, image *FileUpload) (models.Opportunity, error) {
	fields := map[string]string{
		"oppName":            form.OppName,
		"oppDate":            form.OppDate,
		"location":           form.Location,
		"description":        form.Description,
		"membershipRequired": strconv.FormatBool(form.MembershipRequired),
	}

	var envelope struct {
		Opportunity models.Opportunity `json:"opportunity"`
	}
	if err := s.client.postMultipart(s.client.BackendURL+"/sa/createOpp", cookie, fields, image, &envelope); err != nil {
		return models.Opportunity{}, err
	}
	return envelope.Opportunity, nil
}

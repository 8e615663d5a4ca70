// Package services file: services/subadmin_service.go
package services

import (
	"memberhub/models"
)

// SubAdminServiceInterface is the gateway for sub-administrator accounts.
type SubAdminServiceInterface interface {
	List(cookie string) ([]models.SubAdmin, error)
	Create(cookie string, admin models.SubAdmin) (models.SubAdmin, error)
}

// SubAdminService implements SubAdminServiceInterface over the shared client.
type SubAdminService struct {
	client *APIClient
}

// NewSubAdminService creates a SubAdminService.
func NewSubAdminService(client *APIClient) *SubAdminService {
	return &SubAdminService{client: client}
}

// List fetches all sub-admins from GET /sa/get-subadmin.
func (s *SubAdminService) List(cookie string) ([]models.SubAdmin, error) {
	var envelope struct {
		SubAdmins []models.SubAdmin `json:"subAdmins"`
	}
	if err := s.client.getJSON(s.client.BackendURL+"/sa/get-subadmin", cookie, &envelope); err != nil {
		return nil, err
	}
	return envelope.SubAdmins, nil
}

// Create posts the new account as JSON to /sa/sub-admin. The backend echoes
// the created account (password omitted) under "user".
func (s *SubAdminService) Create(cookie string, admin models.SubAdmin) (models.SubAdmin, error) {
	var envelope struct {
		User models.SubAdmin `json:"user"`
	}
	_, err := s.client.postJSON(s.client.BackendURL+"/sa/sub-admin", cookie, admin, &envelope)
	if err != nil {
		return models.SubAdmin{}, err
	}
	return envelope.User, nil
}

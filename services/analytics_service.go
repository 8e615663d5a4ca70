// Package services file: services/analytics_service.go
package services

import (
	"memberhub/models"
)

// AnalyticsServiceInterface is the gateway for the membership analytics API.
// Unlike the backend gateways these calls carry no session cookie; the
// membership API is consumed anonymously, as the original console does.
type AnalyticsServiceInterface interface {
	Stats() (models.MembershipStats, error)
	Transactions() ([]models.Transaction, error)
	Members() ([]models.DirectoryMember, error)
	Member(id string) (models.DirectoryMember, error)
}

// AnalyticsService implements AnalyticsServiceInterface over the shared
// client.
type AnalyticsService struct {
	client *APIClient
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(client *APIClient) *AnalyticsService {
	return &AnalyticsService{client: client}
}

// Stats fetches the aggregate membership snapshot.
func (s *AnalyticsService) Stats() (models.MembershipStats, error) {
	var stats models.MembershipStats
	if err := s.client.getJSON(s.client.MembershipURL+"/api/admin/membership-stats", "", &stats); err != nil {
		return models.MembershipStats{}, err
	}
	return stats, nil
}

// Transactions fetches the membership payment history.
func (s *AnalyticsService) Transactions() ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.client.getJSON(s.client.MembershipURL+"/api/admin/membership-transactions", "", &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// Members fetches the full member directory.
func (s *AnalyticsService) Members() ([]models.DirectoryMember, error) {
	var envelope struct {
		Members []models.DirectoryMember `json:"members"`
	}
	if err := s.client.getJSON(s.client.MembershipURL+"/api/admin/membersList", "", &envelope); err != nil {
		return nil, err
	}
	return envelope.Members, nil
}

// Member fetches one directory entry by id.
func (s *AnalyticsService) Member(id string) (models.DirectoryMember, error) {
	var envelope struct {
		Member models.DirectoryMember `json:"member"`
	}
	if err := s.client.getJSON(s.client.MembershipURL+"/api/admin/members/"+id, "", &envelope); err != nil {
		return models.DirectoryMember{}, err
	}
	return envelope.Member, nil
}

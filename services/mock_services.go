// Package services file: services/mock_services.go
package services

import (
	"github.com/stretchr/testify/mock"

	"memberhub/models"
)

// Compile-time checks that every mock satisfies its interface.
var (
	_ AuthServiceInterface        = (*MockAuthService)(nil)
	_ ChapterServiceInterface     = (*MockChapterService)(nil)
	_ EventServiceInterface       = (*MockEventService)(nil)
	_ SubAdminServiceInterface    = (*MockSubAdminService)(nil)
	_ OpportunityServiceInterface = (*MockOpportunityService)(nil)
	_ AnalyticsServiceInterface   = (*MockAnalyticsService)(nil)
)

// MockAuthService is a mock implementation for testing.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(creds models.Credentials) (models.User, string, error) {
	args := m.Called(creds)
	return args.Get(0).(models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(cookie string) error {
	args := m.Called(cookie)
	return args.Error(0)
}

func (m *MockAuthService) Profile(cookie string) (models.User, error) {
	args := m.Called(cookie)
	return args.Get(0).(models.User), args.Error(1)
}

// MockChapterService is a mock implementation for testing.
type MockChapterService struct {
	mock.Mock
}

func (m *MockChapterService) List(cookie string) ([]models.Chapter, error) {
	args := m.Called(cookie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chapter), args.Error(1)
}

func (m *MockChapterService) Create(cookie string, form models.ChapterForm, image *FileUpload) (models.Chapter, error) {
	args := m.Called(cookie, form, image)
	return args.Get(0).(models.Chapter), args.Error(1)
}

func (m *MockChapterService) Delete(cookie, id string) (bool, error) {
	args := m.Called(cookie, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockChapterService) UpdateMemberRole(cookie, chapterID, memberID, newRole string) error {
	args := m.Called(cookie, chapterID, memberID, newRole)
	return args.Error(0)
}

// MockEventService is a mock implementation for testing.
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(cookie string) ([]models.Event, error) {
	args := m.Called(cookie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventService) Create(cookie string, form models.EventForm, image *FileUpload) (models.Event, error) {
	args := m.Called(cookie, form, image)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockEventService) Delete(cookie, id string) (bool, error) {
	args := m.Called(cookie, id)
	return args.Bool(0), args.Error(1)
}

// MockSubAdminService is a mock implementation for testing.
type MockSubAdminService struct {
	mock.Mock
}

func (m *MockSubAdminService) List(cookie string) ([]models.SubAdmin, error) {
	args := m.Called(cookie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubAdmin), args.Error(1)
}

func (m *MockSubAdminService) Create(cookie string, admin models.SubAdmin) (models.SubAdmin, error) {
	args := m.Called(cookie, admin)
	return args.Get(0).(models.SubAdmin), args.Error(1)
}

// MockOpportunityService is a mock implementation for testing.
type MockOpportunityService struct {
	mock.Mock
}

func (m *MockOpportunityService) List(cookie string) ([]models.Opportunity, error) {
	args := m.Called(cookie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Opportunity), args.Error(1)
}

func (m *MockOpportunityService) Create(cookie string, form models.OpportunityForm, image *FileUpload) (models.Opportunity, error) {
	args := m.Called(cookie, form, image)
	return args.Get(0).(models.Opportunity), args.Error(1)
}

// MockAnalyticsService is a mock implementation for testing.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Stats() (models.MembershipStats, error) {
	args := m.Called()
	return args.Get(0).(models.MembershipStats), args.Error(1)
}

func (m *MockAnalyticsService) Transactions() ([]models.Transaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockAnalyticsService) Members() ([]models.DirectoryMember, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DirectoryMember), args.Error(1)
}

func (m *MockAnalyticsService) Member(id string) (models.DirectoryMember, error) {
	args := m.Called(id)
	return args.Get(0).(models.DirectoryMember), args.Error(1)
}

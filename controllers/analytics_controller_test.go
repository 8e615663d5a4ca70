package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"memberhub/models"
	"memberhub/services"
)

func TestShowAnalytics_RendersStatsAndTransactions(t *testing.T) {
	service := new(services.MockAnalyticsService)
	controller := NewAnalyticsController(service)
	router := setupTestRouter(t)
	router.GET("/dashboard/analytics", controller.ShowAnalytics)

	service.On("Stats").Return(models.MembershipStats{TotalMembers: 120, ActiveMembers: 98}, nil)
	service.On("Transactions").Return([]models.Transaction{{ID: "t1", Amount: 25}}, nil)

	req, _ := http.NewRequest("GET", "/dashboard/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ANALYTICS")
	assert.NotContains(t, w.Body.String(), "Failed to load analytics data")
	service.AssertExpectations(t)
}

func TestShowAnalytics_StatsFailureShowsErrorPanel(t *testing.T) {
	service := new(services.MockAnalyticsService)
	controller := NewAnalyticsController(service)
	router := setupTestRouter(t)
	router.GET("/dashboard/analytics", controller.ShowAnalytics)

	service.On("Stats").Return(models.MembershipStats{}, errors.New("Network Error"))

	req, _ := http.NewRequest("GET", "/dashboard/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load analytics data")
	service.AssertNotCalled(t, "Transactions")
}

func TestShowAnalytics_TransactionsFailureShowsErrorPanel(t *testing.T) {
	service := new(services.MockAnalyticsService)
	controller := NewAnalyticsController(service)
	router := setupTestRouter(t)
	router.GET("/dashboard/analytics", controller.ShowAnalytics)

	service.On("Stats").Return(models.MembershipStats{TotalMembers: 120}, nil)
	service.On("Transactions").Return(nil, errors.New("Network Error"))

	req, _ := http.NewRequest("GET", "/dashboard/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load analytics data")
}

func TestShowMembers_FiltersBySearchTerm(t *testing.T) {
	service := new(services.MockAnalyticsService)
	controller := NewMemberController(service)
	router := setupTestRouter(t)
	router.GET("/dashboard/members", controller.ShowMembers)

	service.On("Members").Return([]models.DirectoryMember{
		{ID: "m1", Name: "Ana Silva", Email: "ana@example.org"},
		{ID: "m2", Name: "Bo Chen", Email: "bo@example.org"},
	}, nil)

	req, _ := http.NewRequest("GET", "/dashboard/members?q=silva", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[Ana Silva]")
	assert.NotContains(t, w.Body.String(), "[Bo Chen]")
}

func TestShowMember_UnknownMemberRenders404(t *testing.T) {
	service := new(services.MockAnalyticsService)
	controller := NewMemberController(service)
	router := setupTestRouter(t)
	router.GET("/dashboard/members/:id", controller.ShowMember)

	service.On("Member", "ghost").Return(models.DirectoryMember{}, errors.New("Not found"))

	req, _ := http.NewRequest("GET", "/dashboard/members/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT FOUND")
}

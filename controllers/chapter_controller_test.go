package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

func newChapterFixture() (*services.MockChapterService, *store.Collection[models.Chapter], *ChapterController) {
	service := new(services.MockChapterService)
	col := store.NewCollection(func(c models.Chapter) string { return c.ID })
	return service, col, NewChapterController(service, col)
}

func postForm(router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShowChapters_PopulatesStore(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.GET("/dashboard/chapters", controller.ShowChapters)

	service.On("List", "").Return([]models.Chapter{
		{ID: "1", ChapterName: "Tech", Zone: "North"},
	}, nil)

	req, _ := http.NewRequest("GET", "/dashboard/chapters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[Tech]")

	data, loading, errMsg := col.Snapshot()
	require.Len(t, data, 1)
	assert.Equal(t, "1", data[0].ID)
	assert.False(t, loading, "loading must be reset once the fetch settles")
	assert.Empty(t, errMsg)
	service.AssertExpectations(t)
}

func TestShowChapters_FetchFailureSetsError(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.GET("/dashboard/chapters", controller.ShowChapters)

	col.SetAll([]models.Chapter{{ID: "stale", ChapterName: "Stale"}})
	service.On("List", "").Return(nil, errors.New("Network Error"))

	req, _ := http.NewRequest("GET", "/dashboard/chapters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data, loading, errMsg := col.Snapshot()
	assert.Equal(t, "Error fetching chapters", errMsg)
	assert.False(t, loading)
	assert.Len(t, data, 1, "a failed fetch leaves the cached data unchanged")
}

func TestCreateChapter_AddsBackendEcho(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters", controller.CreateChapter)

	echoed := models.Chapter{ID: "server-9", ChapterName: "Tech", Zone: "North", ChapterLeadName: "Ana"}
	service.On("Create", "", mock.Anything, (*services.FileUpload)(nil)).Return(echoed, nil)

	w := postForm(router, "/dashboard/chapters", url.Values{
		"chapterName":     {"Tech"},
		"zone":            {"North"},
		"chapterLeadName": {"Ana"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	data := col.Data()
	require.Len(t, data, 1)
	assert.Equal(t, "server-9", data[0].ID, "the stored record is the backend echo, not the local draft")
	service.AssertExpectations(t)
}

func TestCreateChapter_ValidationShortCircuits(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters", controller.CreateChapter)

	w := postForm(router, "/dashboard/chapters", url.Values{
		"chapterName": {"Tech"},
		// zone and lead missing
	})

	assert.Equal(t, http.StatusFound, w.Code)
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.Zero(t, col.Len())
}

func TestCreateChapter_GatewayFailureSetsError(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters", controller.CreateChapter)

	service.On("Create", "", mock.Anything, (*services.FileUpload)(nil)).
		Return(models.Chapter{}, errors.New("Network Error"))

	w := postForm(router, "/dashboard/chapters", url.Values{
		"chapterName":     {"Tech"},
		"zone":            {"North"},
		"chapterLeadName": {"Ana"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	data, loading, errMsg := col.Snapshot()
	assert.Empty(t, data, "a rejected create must not grow the collection")
	assert.False(t, loading)
	assert.Equal(t, "Error adding chapter", errMsg)
}

func TestDeleteChapter_OptimisticWithoutRollback(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters/:id/delete", controller.DeleteChapter)

	col.SetAll([]models.Chapter{{ID: "7", ChapterName: "Doomed"}, {ID: "8", ChapterName: "Kept"}})
	service.On("Delete", "", "7").Return(false, errors.New("Network Error"))

	w := postForm(router, "/dashboard/chapters/7/delete", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	data, _, errMsg := col.Snapshot()
	require.Len(t, data, 1, "the optimistic removal stands even though the backend rejected it")
	assert.Equal(t, "8", data[0].ID)
	assert.Equal(t, "Error deleting chapter", errMsg)
}

func TestDeleteChapter_ConfirmedDeleteRefetches(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters/:id/delete", controller.DeleteChapter)

	col.SetAll([]models.Chapter{{ID: "7"}, {ID: "8"}})
	service.On("Delete", "", "7").Return(true, nil)
	service.On("List", "").Return([]models.Chapter{{ID: "8", ChapterName: "Kept"}}, nil)

	w := postForm(router, "/dashboard/chapters/7/delete", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	data := col.Data()
	require.Len(t, data, 1)
	assert.Equal(t, "Kept", data[0].ChapterName)
	service.AssertExpectations(t)
}

func TestUpdateMemberRole_OptimisticToggleSurvivesFailure(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters/:id/members/:memberId/role", controller.UpdateMemberRole)

	col.SetAll([]models.Chapter{{
		ID: "c1",
		Members: []models.Member{
			{MemberID: "m1", Name: "Ana", Role: models.RoleMember},
			{MemberID: "m2", Name: "Bo", Role: models.RoleMember},
		},
	}})
	service.On("UpdateMemberRole", "", "c1", "m1", models.RoleCommittee).
		Return(errors.New("Network Error"))

	w := postForm(router, "/dashboard/chapters/c1/members/m1/role", url.Values{
		"newRole": {models.RoleCommittee},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	data, _, errMsg := col.Snapshot()
	assert.Equal(t, models.RoleCommittee, data[0].Members[0].Role, "the toggle is not reverted")
	assert.Equal(t, models.RoleMember, data[0].Members[1].Role, "siblings are untouched")
	assert.Equal(t, "Error updating member role", errMsg)
}

func TestUpdateMemberRole_RejectsUnknownRole(t *testing.T) {
	service, col, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.POST("/dashboard/chapters/:id/members/:memberId/role", controller.UpdateMemberRole)

	col.SetAll([]models.Chapter{{ID: "c1", Members: []models.Member{{MemberID: "m1", Role: models.RoleMember}}}})

	w := postForm(router, "/dashboard/chapters/c1/members/m1/role", url.Values{
		"newRole": {"overlord"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	service.AssertNotCalled(t, "UpdateMemberRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, models.RoleMember, col.Data()[0].Members[0].Role)
}

func TestShowChapterMembers_UnknownChapterRedirects(t *testing.T) {
	service, _, controller := newChapterFixture()
	router := setupTestRouter(t)
	router.GET("/dashboard/chapters/:id/members", controller.ShowChapterMembers)

	service.On("List", "").Return([]models.Chapter{{ID: "c1"}}, nil)

	req, _ := http.NewRequest("GET", "/dashboard/chapters/ghost/members", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/chapters", w.Header().Get("Location"))
}

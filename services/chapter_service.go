// Package services file: services/chapter_service.go
package services

import (
	"encoding/json"
	"fmt"

	"memberhub/logger"
	"memberhub/models"
)

// ChapterServiceInterface is the gateway for chapter operations.
type ChapterServiceInterface interface {
	List(cookie string) ([]models.Chapter, error)
	Create(cookie string, form models.ChapterForm, image *FileUpload) (models.Chapter, error)
	Delete(cookie, id string) (bool, error)
	UpdateMemberRole(cookie, chapterID, memberID, newRole string) error
}

// ChapterService implements ChapterServiceInterface over the shared client.
type ChapterService struct {
	client *APIClient
}

// NewChapterService creates a ChapterService.
func NewChapterService(client *APIClient) *ChapterService {
	return &ChapterService{client: client}
}

// List fetches all chapters from GET /sa/get-chapter.
func (s *ChapterService) List(cookie string) ([]models.Chapter, error) {
	var envelope struct {
		Chapters []models.Chapter `json:"chapters"`
	}
	if err := s.client.getJSON(s.client.BackendURL+"/sa/get-chapter", cookie, &envelope); err != nil {
		return nil, err
	}
	logger.Debug.Printf("[ChapterService.List] fetched %d chapters", len(envelope.Chapters))
	return envelope.Chapters, nil
}

// Create posts the chapter form (multipart, image optional) to /sa/chapter
// and returns the record as the backend echoed it, server-assigned id
// included.
func (s *ChapterService) Create(cookie string, form models.ChapterForm, image *FileUpload) (models.Chapter, error) {
	members, err := json.Marshal(form.Members)
	if err != nil {
		return models.Chapter{}, fmt.Errorf("encode chapter members: %w", err)
	}

	fields := map[string]string{
		"chapterName":     form.ChapterName,
		"zone":            form.Zone,
		"description":     form.Description,
		"chapterLeadName": form.ChapterLeadName,
		"members":         string(members),
	}

	var envelope struct {
		Success bool           `json:"success"`
		Chapter models.Chapter `json:"chapter"`
	}
	if err := s.client.postMultipart(s.client.BackendURL+"/sa/chapter", cookie, fields, image, &envelope); err != nil {
		return models.Chapter{}, err
	}
	if !envelope.Success {
		return models.Chapter{}, fmt.Errorf("backend rejected chapter %q", form.ChapterName)
	}
	return envelope.Chapter, nil
}

// Delete posts to /sa/delChap/:id and returns the backend's success flag.
func (s *ChapterService) Delete(cookie, id string) (bool, error) {
	var envelope struct {
		Success bool `json:"success"`
	}
	_, err := s.client.postJSON(s.client.BackendURL+"/sa/delChap/"+id, cookie, nil, &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Success, nil
}

// UpdateMemberRole posts a targeted role change to /sa/updaterole. The
// backend acknowledges without a meaningful payload.
func (s *ChapterService) UpdateMemberRole(cookie, chapterID, memberID, newRole string) error {
	payload := map[string]string{
		"chapterId": chapterID,
		"memberId":  memberID,
		"newRole":   newRole,
	}
	_, err := s.client.postJSON(s.client.BackendURL+"/sa/updaterole", cookie, payload, nil)
	return err
}

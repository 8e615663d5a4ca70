// Package services file: services/event_service.go
package services

import (
	"fmt"
	"strconv"

	"memberhub/logger"
	"memberhub/models"
)

// EventServiceInterface is the gateway for event operations.
type EventServiceInterface interface {
	List(cookie string) ([]models.Event, error)
	Create(cookie string, form models.EventForm, image *FileUpload) (models.Event, error)
	Delete(cookie, id string) (bool, error)
}

// EventService implements EventServiceInterface over the shared client.
type EventService struct {
	client *APIClient
}

// NewEventService creates an EventService.
func NewEventService(client *APIClient) *EventService {
	return &EventService{client: client}
}

// List fetches all events from GET /sa/get-event.
func (s *EventService) List(cookie string) ([]models.Event, error) {
	var envelope struct {
		Events []models.Event `json:"events"`
	}
	if err := s.client.getJSON(s.client.BackendURL+"/sa/get-event", cookie, &envelope); err != nil {
		logger.Warn.Printf("[EventService.List] fetch failed: %v", err)
		return nil, err
	}
	return envelope.Events, nil
}

// Create posts the event form (multipart, image optional) to /sa/event and
// returns the created record as echoed by the backend.
func (s *EventService) Create(cookie string, form models.EventForm, image *FileUpload) (models.Event, error) {
	fields := map[string]string{
		"eventName":          form.EventName,
		"eventStartTime":     form.EventStartTime,
		"eventEndTime":       form.EventEndTime,
		"eventDate":          form.EventDate,
		"location":           form.Location,
		"description":        form.Description,
		"membershipRequired": strconv.FormatBool(form.MembershipRequired),
		"chapter":            form.Chapter,
		"slots":              strconv.Itoa(form.Slots),
		"link":               form.Link,
	}

	var envelope struct {
		Success bool         `json:"success"`
		Event   models.Event `json:"event"`
	}
	if err := s.client.postMultipart(s.client.BackendURL+"/sa/event", cookie, fields, image, &envelope); err != nil {
		return models.Event{}, err
	}
	if !envelope.Success {
		return models.Event{}, fmt.Errorf("backend rejected event %q", form.EventName)
	}
	return envelope.Event, nil
}

// Delete posts to /sa/delEvent/:id and returns the backend's success flag.
func (s *EventService) Delete(cookie, id string) (bool, error) {
	var envelope struct {
		Success bool `json:"success"`
	}
	_, err := s.client.postJSON(s.client.BackendURL+"/sa/delEvent/"+id, cookie, nil, &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Success, nil
}

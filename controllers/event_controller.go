// Package controllers file: controllers/event_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

// EventController drives the event management screen. It also keeps the
// chapter collection warm because the "add event" form offers a chapter
// select.
type EventController struct {
	Service    services.EventServiceInterface
	Store      *store.Collection[models.Event]
	Chapters   *store.Collection[models.Chapter]
	ChapterSvc services.ChapterServiceInterface
}

// NewEventController creates an EventController.
func NewEventController(service services.EventServiceInterface, col *store.Collection[models.Event],
	chapterSvc services.ChapterServiceInterface, chapters *store.Collection[models.Chapter]) *EventController {
	return &EventController{
		Service:    service,
		Store:      col,
		ChapterSvc: chapterSvc,
		Chapters:   chapters,
	}
}

// ShowEvents refreshes the event collection and renders the management page.
// Chapters are fetched only when their cache is empty; a failure there is
// logged and the select simply renders empty.
func (ec *EventController) ShowEvents(c *gin.Context) {
	cookie := upstreamCookie(c)

	ec.Store.SetLoading(true)
	events, err := ec.Service.List(cookie)
	if err != nil {
		logger.Error.Printf("ShowEvents: %v", err)
		ec.Store.SetError("Error fetching events")
	} else {
		ec.Store.SetAll(events)
		ec.Store.SetError("")
	}
	ec.Store.SetLoading(false)

	if ec.Chapters.Len() == 0 {
		if chapters, cerr := ec.ChapterSvc.List(cookie); cerr != nil {
			logger.Warn.Printf("ShowEvents: chapter fetch for select failed: %v", cerr)
		} else {
			ec.Chapters.SetAll(chapters)
		}
	}

	data, loading, errMsg := ec.Store.Snapshot()
	c.HTML(http.StatusOK, "events.html", pageData(c, gin.H{
		"Events":   data,
		"Chapters": ec.Chapters.Data(),
		"Loading":  loading,
		"Error":    errMsg,
	}))
}

// CreateEvent handles the "add event" form. Validation runs before anything
// touches the gateway: required fields, and a membership-gated event must
// have a positive slot count.
func (ec *EventController) CreateEvent(c *gin.Context) {
	slots, _ := strconv.Atoi(c.PostForm("slots"))
	form := models.EventForm{
		EventName:          c.PostForm("eventName"),
		EventDate:          c.PostForm("eventDate"),
		EventStartTime:     c.PostForm("eventStartTime"),
		EventEndTime:       c.PostForm("eventEndTime"),
		Location:           c.PostForm("location"),
		Description:        c.PostForm("description"),
		MembershipRequired: c.PostForm("membershipRequired") == "on" || c.PostForm("membershipRequired") == "true",
		Chapter:            c.PostForm("chapter"),
		Slots:              slots,
		Link:               c.PostForm("link"),
	}

	if err := form.Validate(); err != nil {
		setFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/dashboard/events")
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		setFlash(c, "error", "Could not read the uploaded image.")
		c.Redirect(http.StatusFound, "/dashboard/events")
		return
	}
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				logger.Warn.Printf("CreateEvent: closing upload: %v", cerr)
			}
		}()
	}

	ec.Store.SetLoading(true)
	defer ec.Store.SetLoading(false)

	event, err := ec.Service.Create(upstreamCookie(c), form, image)
	if err != nil {
		logger.Error.Printf("CreateEvent: %v", err)
		ec.Store.SetError("Error adding event")
		setFlash(c, "error", "Failed to add event. Please try again.")
		c.Redirect(http.StatusFound, "/dashboard/events")
		return
	}

	ec.Store.Add(event)
	setFlash(c, "success", "Event added successfully.")
	c.Redirect(http.StatusFound, "/dashboard/events")
}

// DeleteEvent removes the event optimistically, then tells the backend. On
// failure the removal stands; only the error flag and flash change.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	ec.Store.Remove(id)

	ec.Store.SetLoading(true)
	ok, err := ec.Service.Delete(upstreamCookie(c), id)
	ec.Store.SetLoading(false)

	switch {
	case err != nil:
		logger.Error.Printf("DeleteEvent: %v", err)
		ec.Store.SetError("Error deleting event")
		setFlash(c, "error", "Failed to delete event. Please try again.")
	case ok:
		setFlash(c, "success", "Event deleted successfully.")
	default:
		setFlash(c, "error", "Failed to delete event. Please try again.")
	}

	c.Redirect(http.StatusFound, "/dashboard/events")
}

// EventQRCode serves a PNG QR code for the event's signup link.
func (ec *EventController) EventQRCode(c *gin.Context) {
	id := c.Param("id")

	var link string
	for _, event := range ec.Store.Data() {
		if event.ID == id {
			link = event.Link
			break
		}
	}

	png, err := services.GenerateEventQRCode(link, 256)
	if err != nil {
		logger.Warn.Printf("EventQRCode: event %s: %v", id, err)
		c.String(http.StatusNotFound, "No signup link for this event")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

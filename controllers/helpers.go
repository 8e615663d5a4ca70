// Package controllers drives the console's screens: each controller binds one
// entity store and gateway pair and renders its management page.
// File: controllers/helpers.go
package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/csrf"

	"memberhub/logger"
	"memberhub/middleware"
	"memberhub/models"
	"memberhub/services"
)

// ------------------ session helpers ------------------

// upstreamCookie returns the backend session cookie stored at login, or "".
func upstreamCookie(c *gin.Context) string {
	session := sessions.Default(c)
	cookie, _ := session.Get(middleware.SessionKeyUpstream).(string)
	return cookie
}

// newSessionID mints a console session id.
func newSessionID() string {
	return uuid.NewString()
}

// currentUser returns the user the guard parked on the context.
func currentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// ------------------ flash messages ------------------

// Flash is a one-shot notification shown on the next rendered page, the
// console's stand-in for the SPA's toasts.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

const (
	flashKindKey    = "flashKind"
	flashMessageKey = "flashMessage"
)

// setFlash queues a notification for the next page render.
func setFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.Set(flashKindKey, kind)
	session.Set(flashMessageKey, message)
	if err := session.Save(); err != nil {
		logger.Error.Printf("setFlash: failed to save session: %v", err)
	}
}

// takeFlash pops the queued notification, if any.
func takeFlash(c *gin.Context) *Flash {
	session := sessions.Default(c)
	message, _ := session.Get(flashMessageKey).(string)
	if message == "" {
		return nil
	}
	kind, _ := session.Get(flashKindKey).(string)
	session.Delete(flashKindKey)
	session.Delete(flashMessageKey)
	if err := session.Save(); err != nil {
		logger.Error.Printf("takeFlash: failed to save session: %v", err)
	}
	return &Flash{Kind: kind, Message: message}
}

// ------------------ form helpers ------------------

// formImage lifts the optional "image" file out of a form submission. The
// returned closer, when non-nil, must be closed after the gateway call.
func formImage(c *gin.Context) (*services.FileUpload, io.Closer, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Forms without a file input post urlencoded, not multipart.
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &services.FileUpload{
		FieldName: "image",
		FileName:  fileHeader.Filename,
		Content:   file,
	}
	return upload, file, nil
}

// ------------------ render helpers ------------------

// pageData assembles the fields every template expects: the signed-in user,
// any pending flash and the CSRF field for forms.
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"CSRFField": csrf.TemplateField(c.Request),
	}
	if user, ok := currentUser(c); ok {
		data["User"] = user
	}
	if flash := takeFlash(c); flash != nil {
		data["Flash"] = flash
	}
	for key, value := range extra {
		data[key] = value
	}
	return data
}

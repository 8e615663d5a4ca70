// Package controllers handles staff authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/middleware"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

// AuthController owns the login and logout flows. Authentication itself is
// delegated to the backend; the controller only shuttles credentials up and
// the resulting session cookie into the console session.
type AuthController struct {
	Auth     services.AuthServiceInterface
	Registry *store.SessionRegistry
}

// NewAuthController creates an AuthController.
func NewAuthController(auth services.AuthServiceInterface, registry *store.SessionRegistry) *AuthController {
	return &AuthController{Auth: auth, Registry: registry}
}

// ShowLoginPage renders the login form. An already signed-in session skips
// straight to the dashboard.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	if sid, _ := session.Get(middleware.SessionKeySID).(string); sid != "" {
		if snap := ac.Registry.Get(sid).Snapshot(); snap.User != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", pageData(c, nil))
}

// PerformLogin validates the form, exchanges credentials with the backend and
// stores the upstream session cookie for later gateway calls.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		logger.Warn.Println("PerformLogin: missing username or password")
		c.HTML(http.StatusBadRequest, "login.html", pageData(c, gin.H{
			"Error": "Please fill in all fields.",
		}))
		return
	}

	session := sessions.Default(c)
	sid, _ := session.Get(middleware.SessionKeySID).(string)
	if sid == "" {
		sid = newSessionID()
		session.Set(middleware.SessionKeySID, sid)
	}
	state := ac.Registry.Get(sid)

	state.LoginStart()
	user, cookie, err := ac.Auth.Login(models.Credentials{Username: username, Password: password})
	if err != nil {
		state.LoginFailure("Invalid username or password.")
		logger.Warn.Printf("PerformLogin: login rejected for %s: %v", username, err)
		c.HTML(http.StatusUnauthorized, "login.html", pageData(c, gin.H{
			"Error": "Invalid username or password.",
		}))
		return
	}

	state.LoginSuccess(user)
	session.Set(middleware.SessionKeyUpstream, cookie)
	if err := session.Save(); err != nil {
		logger.Error.Printf("PerformLogin: failed to save session: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", pageData(c, gin.H{
			"Error": "Internal error, please try again.",
		}))
		return
	}

	logger.Info.Printf("PerformLogin: %s signed in", user.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout invalidates the upstream session, drops the local auth state and
// clears the console session.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)

	if cookie, _ := session.Get(middleware.SessionKeyUpstream).(string); cookie != "" {
		if err := ac.Auth.Logout(cookie); err != nil {
			// the local session is cleared regardless
			logger.Warn.Printf("Logout: upstream logout failed: %v", err)
		}
	}

	if sid, _ := session.Get(middleware.SessionKeySID).(string); sid != "" {
		ac.Registry.Get(sid).Logout()
		ac.Registry.Drop(sid)
	}

	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session: %v", err)
	} else {
		logger.Info.Println("Logout: session cleared")
	}

	c.Redirect(http.StatusFound, "/login")
}

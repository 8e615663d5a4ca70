// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
)

// Health answers load-balancer health checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ShowDashboard renders the dashboard shell with its tab navigation. The
// individual management screens live under /dashboard/<tab>.
func ShowDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		logger.Warn.Println("ShowDashboard: no user on context, redirecting to /login")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", pageData(c, gin.H{
		"Name": user.Name,
	}))
}

// NotFound renders the 404 page for unmatched routes.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", pageData(c, nil))
}

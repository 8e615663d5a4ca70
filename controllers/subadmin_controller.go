// Package controllers file: controllers/subadmin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

// SubAdminController drives the sub-administrator management screen.
type SubAdminController struct {
	Service services.SubAdminServiceInterface
	Store   *store.Collection[models.SubAdmin]
}

// NewSubAdminController creates a SubAdminController.
func NewSubAdminController(service services.SubAdminServiceInterface, col *store.Collection[models.SubAdmin]) *SubAdminController {
	return &SubAdminController{Service: service, Store: col}
}

// ShowSubAdmins refreshes the collection and renders the management page.
func (sc *SubAdminController) ShowSubAdmins(c *gin.Context) {
	sc.Store.SetLoading(true)
	admins, err := sc.Service.List(upstreamCookie(c))
	if err != nil {
		logger.Error.Printf("ShowSubAdmins: %v", err)
		sc.Store.SetError("Error fetching sub-admins")
	} else {
		sc.Store.SetAll(admins)
		sc.Store.SetError("")
	}
	sc.Store.SetLoading(false)

	data, loading, errMsg := sc.Store.Snapshot()
	c.HTML(http.StatusOK, "subadmins.html", pageData(c, gin.H{
		"SubAdmins": data,
		"Loading":   loading,
		"Error":     errMsg,
	}))
}

// CreateSubAdmin handles the "add sub-admin" form. The account is sent as
// JSON; the backend echoes it back without the password.
func (sc *SubAdminController) CreateSubAdmin(c *gin.Context) {
	admin := models.SubAdmin{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	if err := admin.Validate(); err != nil {
		setFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/dashboard/subadmins")
		return
	}

	sc.Store.SetLoading(true)
	defer sc.Store.SetLoading(false)

	created, err := sc.Service.Create(upstreamCookie(c), admin)
	if err != nil {
		logger.Error.Printf("CreateSubAdmin: %v", err)
		sc.Store.SetError("Error adding sub-admin")
		setFlash(c, "error", "Failed to add sub-admin. Please try again.")
		c.Redirect(http.StatusFound, "/dashboard/subadmins")
		return
	}

	sc.Store.Add(created)
	setFlash(c, "success", "Sub-admin added successfully.")
	c.Redirect(http.StatusFound, "/dashboard/subadmins")
}

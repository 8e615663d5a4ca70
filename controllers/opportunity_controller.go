// Package controllers file: controllers/opportunity_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

// OpportunityController drives the opportunity management screen.
type OpportunityController struct {
	Service services.OpportunityServiceInterface
	Store   *store.Collection[models.Opportunity]
}

// NewOpportunityController creates an OpportunityController.
func NewOpportunityController(service services.OpportunityServiceInterface, col *store.Collection[models.Opportunity]) *OpportunityController {
	return &OpportunityController{Service: service, Store: col}
}

// ShowOpportunities refreshes the collection and renders the page.
func (oc *OpportunityController) ShowOpportunities(c *gin.Context) {
	oc.Store.SetLoading(true)
	opportunities, err := oc.Service.List(upstreamCookie(c))
	if err != nil {
		logger.Error.Printf("ShowOpportunities: %v", err)
		oc.Store.SetError("Error fetching opportunities")
	} else {
		oc.Store.SetAll(opportunities)
		oc.Store.SetError("")
	}
	oc.Store.SetLoading(false)

	data, loading, errMsg := oc.Store.Snapshot()
	c.HTML(http.StatusOK, "opportunities.html", pageData(c, gin.H{
		"Opportunities": data,
		"Loading":       loading,
		"Error":         errMsg,
	}))
}

// CreateOpportunity handles the "add opportunity" form (multipart, image
// optional).
func (oc *OpportunityController) CreateOpportunity(c *gin.Context) {
	form := models.OpportunityForm{
		OppName:            c.PostForm("oppName"),
		OppDate:            c.PostForm("oppDate"),
		Location:           c.PostForm("location"),
		Description:        c.PostForm("description"),
		MembershipRequired: c.PostForm("membershipRequired") == "on" || c.PostForm("membershipRequired") == "true",
	}

	if err := form.Validate(); err != nil {
		setFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/dashboard/opportunities")
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		setFlash(c, "error", "Could not read the uploaded image.")
		c.Redirect(http.StatusFound, "/dashboard/opportunities")
		return
	}
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				logger.Warn.Printf("CreateOpportunity: closing upload: %v", cerr)
			}
		}()
	}

	oc.Store.SetLoading(true)
	defer oc.Store.SetLoading(false)

	created, err := oc.Service.Create(upstreamCookie(c), form, image)
	if err != nil {
		logger.Error.Printf("CreateOpportunity: %v", err)
		oc.Store.SetError("Error adding opportunity")
		setFlash(c, "error", "Failed to add opportunity. Please try again.")
		c.Redirect(http.StatusFound, "/dashboard/opportunities")
		return
	}

	oc.Store.Add(created)
	setFlash(c, "success", "Opportunity added successfully.")
	c.Redirect(http.StatusFound, "/dashboard/opportunities")
}

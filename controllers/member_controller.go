// Package controllers file: controllers/member_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/models"
	"memberhub/services"
)

// MemberController renders the member directory and individual member
// profiles from the membership API.
type MemberController struct {
	Service services.AnalyticsServiceInterface
}

// NewMemberController creates a MemberController.
func NewMemberController(service services.AnalyticsServiceInterface) *MemberController {
	return &MemberController{Service: service}
}

// ShowMembers renders the directory, filtered by the optional ?q= search term
// across name, email, phone and country.
func (mc *MemberController) ShowMembers(c *gin.Context) {
	term := c.Query("q")

	members, err := mc.Service.Members()
	if err != nil {
		logger.Error.Printf("ShowMembers: %v", err)
		c.HTML(http.StatusOK, "members.html", pageData(c, gin.H{
			"Error":  "Failed to load members",
			"Search": term,
		}))
		return
	}

	filtered := make([]models.DirectoryMember, 0, len(members))
	for _, member := range members {
		if member.MatchesSearch(term) {
			filtered = append(filtered, member)
		}
	}

	c.HTML(http.StatusOK, "members.html", pageData(c, gin.H{
		"Members": filtered,
		"Search":  term,
	}))
}

// ShowMember renders one member's profile.
func (mc *MemberController) ShowMember(c *gin.Context) {
	id := c.Param("id")

	member, err := mc.Service.Member(id)
	if err != nil {
		logger.Error.Printf("ShowMember: member %s: %v", id, err)
		c.HTML(http.StatusNotFound, "notfound.html", pageData(c, nil))
		return
	}

	c.HTML(http.StatusOK, "member_detail.html", pageData(c, gin.H{
		"Member": member,
	}))
}

// Package controllers file: controllers/chapter_controller.go
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

// ChapterController drives the chapter management screen.
type ChapterController struct {
	Service services.ChapterServiceInterface
	Store   *store.Collection[models.Chapter]
}

// NewChapterController creates a ChapterController bound to its store and
// gateway.
func NewChapterController(service services.ChapterServiceInterface, col *store.Collection[models.Chapter]) *ChapterController {
	return &ChapterController{Service: service, Store: col}
}

// fetchChapters runs the full list lifecycle: loading on, gateway call,
// reconcile or record the error, loading off. A successful fetch clears any
// stale error.
func (cc *ChapterController) fetchChapters(cookie string) {
	cc.Store.SetLoading(true)
	defer cc.Store.SetLoading(false)

	chapters, err := cc.Service.List(cookie)
	if err != nil {
		logger.Error.Printf("fetchChapters: %v", err)
		cc.Store.SetError("Error fetching chapters")
		return
	}
	cc.Store.SetAll(chapters)
	cc.Store.SetError("")
}

// ShowChapters refreshes the collection and renders the management page.
func (cc *ChapterController) ShowChapters(c *gin.Context) {
	cc.fetchChapters(upstreamCookie(c))

	chapters, loading, errMsg := cc.Store.Snapshot()
	c.HTML(http.StatusOK, "chapters.html", pageData(c, gin.H{
		"Chapters": chapters,
		"Loading":  loading,
		"Error":    errMsg,
	}))
}

// CreateChapter handles the "add chapter" form: validate, forward to the
// backend (multipart when an image is attached), append the echoed record.
func (cc *ChapterController) CreateChapter(c *gin.Context) {
	form := models.ChapterForm{
		ChapterName:     c.PostForm("chapterName"),
		Zone:            c.PostForm("zone"),
		Description:     c.PostForm("description"),
		ChapterLeadName: c.PostForm("chapterLeadName"),
	}
	if raw := c.PostForm("members"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Members); err != nil {
			setFlash(c, "error", "Members list is not valid JSON.")
			c.Redirect(http.StatusFound, "/dashboard/chapters")
			return
		}
	}

	if err := form.Validate(); err != nil {
		setFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/dashboard/chapters")
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		setFlash(c, "error", "Could not read the uploaded image.")
		c.Redirect(http.StatusFound, "/dashboard/chapters")
		return
	}
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				logger.Warn.Printf("CreateChapter: closing upload: %v", cerr)
			}
		}()
	}

	cc.Store.SetLoading(true)
	defer cc.Store.SetLoading(false)

	chapter, err := cc.Service.Create(upstreamCookie(c), form, image)
	if err != nil {
		logger.Error.Printf("CreateChapter: %v", err)
		cc.Store.SetError("Error adding chapter")
		setFlash(c, "error", "Failed to add chapter. Please try again.")
		c.Redirect(http.StatusFound, "/dashboard/chapters")
		return
	}

	cc.Store.Add(chapter)
	setFlash(c, "success", "Chapter added successfully!")
	c.Redirect(http.StatusFound, "/dashboard/chapters")
}

// DeleteChapter removes the chapter optimistically, then confirms with the
// backend. A confirmed delete re-fetches the list; a failure keeps the
// optimistic removal and only surfaces the error.
func (cc *ChapterController) DeleteChapter(c *gin.Context) {
	id := c.Param("id")
	cookie := upstreamCookie(c)

	cc.Store.Remove(id)

	cc.Store.SetLoading(true)
	ok, err := cc.Service.Delete(cookie, id)
	cc.Store.SetLoading(false)

	switch {
	case err != nil:
		logger.Error.Printf("DeleteChapter: %v", err)
		cc.Store.SetError("Error deleting chapter")
		setFlash(c, "error", "Failed to delete chapter. Please try again.")
	case ok:
		setFlash(c, "success", "Chapter deleted successfully!")
		cc.fetchChapters(cookie)
	default:
		setFlash(c, "error", "Failed to delete chapter. Please try again.")
	}

	c.Redirect(http.StatusFound, "/dashboard/chapters")
}

// ShowChapterMembers renders the member roster detail for one chapter from
// the already-loaded collection.
func (cc *ChapterController) ShowChapterMembers(c *gin.Context) {
	chapter, found := cc.findChapter(c)
	if !found {
		c.Redirect(http.StatusFound, "/dashboard/chapters")
		return
	}
	c.HTML(http.StatusOK, "chapter_members.html", pageData(c, gin.H{
		"Chapter": chapter,
	}))
}

// ShowChapterEvents renders the events detail for one chapter.
func (cc *ChapterController) ShowChapterEvents(c *gin.Context) {
	chapter, found := cc.findChapter(c)
	if !found {
		c.Redirect(http.StatusFound, "/dashboard/chapters")
		return
	}
	c.HTML(http.StatusOK, "chapter_events.html", pageData(c, gin.H{
		"Chapter": chapter,
	}))
}

// UpdateMemberRole toggles one member's role inside one chapter. The cached
// record is patched first and the backend told second; a backend failure
// keeps the optimistic toggle and only sets the store error.
func (cc *ChapterController) UpdateMemberRole(c *gin.Context) {
	chapterID := c.Param("id")
	memberID := c.Param("memberId")
	newRole := c.PostForm("newRole")

	if !models.ValidRole(newRole) {
		setFlash(c, "error", "Unknown member role.")
		c.Redirect(http.StatusFound, "/dashboard/chapters/"+chapterID+"/members")
		return
	}

	cc.Store.Mutate(chapterID, func(chapter *models.Chapter) {
		for i := range chapter.Members {
			if chapter.Members[i].MemberID == memberID {
				chapter.Members[i].Role = newRole
			}
		}
	})

	cc.Store.SetLoading(true)
	err := cc.Service.UpdateMemberRole(upstreamCookie(c), chapterID, memberID, newRole)
	cc.Store.SetLoading(false)

	if err != nil {
		logger.Error.Printf("UpdateMemberRole: %v", err)
		cc.Store.SetError("Error updating member role")
		setFlash(c, "error", "Failed to update member role.")
	} else {
		setFlash(c, "success", "Member role updated.")
	}

	c.Redirect(http.StatusFound, "/dashboard/chapters/"+chapterID+"/members")
}

// findChapter locates the chapter named by the :id param, fetching the list
// first when the cache is empty (deep links land here before the list page).
func (cc *ChapterController) findChapter(c *gin.Context) (models.Chapter, bool) {
	if cc.Store.Len() == 0 {
		cc.fetchChapters(upstreamCookie(c))
	}
	id := c.Param("id")
	for _, chapter := range cc.Store.Data() {
		if chapter.ID == id {
			return chapter, true
		}
	}
	logger.Warn.Printf("findChapter: chapter %s not in collection", id)
	return models.Chapter{}, false
}

// Package controllers file: controllers/analytics_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memberhub/logger"
	"memberhub/services"
)

// AnalyticsController renders the membership analytics screen. Analytics are
// fetched fresh on every view and never cached in a collection; the screen
// owns its loading and error presentation.
type AnalyticsController struct {
	Service services.AnalyticsServiceInterface
}

// NewAnalyticsController creates an AnalyticsController.
func NewAnalyticsController(service services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// ShowAnalytics fetches the aggregate stats and the transaction history and
// renders both. Either fetch failing renders the page's error panel instead.
func (ac *AnalyticsController) ShowAnalytics(c *gin.Context) {
	stats, err := ac.Service.Stats()
	if err != nil {
		logger.Error.Printf("ShowAnalytics: stats fetch failed: %v", err)
		c.HTML(http.StatusOK, "analytics.html", pageData(c, gin.H{
			"Error": "Failed to load analytics data",
		}))
		return
	}

	transactions, err := ac.Service.Transactions()
	if err != nil {
		logger.Error.Printf("ShowAnalytics: transactions fetch failed: %v", err)
		c.HTML(http.StatusOK, "analytics.html", pageData(c, gin.H{
			"Error": "Failed to load analytics data",
		}))
		return
	}

	c.HTML(http.StatusOK, "analytics.html", pageData(c, gin.H{
		"Stats":        stats,
		"Transactions": transactions,
	}))
}

// main.go
package main

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"

	"memberhub/controllers"
	"memberhub/logger"
	"memberhub/metrics"
	"memberhub/middleware"
	"memberhub/models"
	"memberhub/services"
	"memberhub/store"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Info.Println("No .env file found, using process environment")
	}

	appEnv := os.Getenv("APP_ENV")
	logger.SetLogLevel(appEnv)
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if os.Getenv("METRICS_ENABLED") == "true" {
		metrics.Enable()
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:5000" // local backend default
	}
	membershipURL := os.Getenv("MEMBERSHIP_API_URL")
	if membershipURL == "" {
		membershipURL = "http://localhost:8000" // local membership API default
	}

	// Gateways share one transport.
	client := services.NewAPIClient(backendURL, membershipURL)
	authService := services.NewAuthService(client)
	chapterService := services.NewChapterService(client)
	eventService := services.NewEventService(client)
	subAdminService := services.NewSubAdminService(client)
	opportunityService := services.NewOpportunityService(client)
	analyticsService := services.NewAnalyticsService(client)

	// One collection per entity type for the process lifetime.
	chapterStore := store.NewCollection(func(c models.Chapter) string { return c.ID })
	eventStore := store.NewCollection(func(e models.Event) string { return e.ID })
	subAdminStore := store.NewCollection(func(s models.SubAdmin) string { return s.ID })
	opportunityStore := store.NewCollection(func(o models.Opportunity) string { return o.ID })
	registry := store.NewSessionRegistry()

	// Gauge of console sessions, published once a minute when metrics are on.
	go func() {
		for range time.Tick(time.Minute) {
			metrics.PublishActiveSessions(registry.Len())
		}
	}()

	authController := controllers.NewAuthController(authService, registry)
	chapterController := controllers.NewChapterController(chapterService, chapterStore)
	eventController := controllers.NewEventController(eventService, eventStore, chapterService, chapterStore)
	subAdminController := controllers.NewSubAdminController(subAdminService, subAdminStore)
	opportunityController := controllers.NewOpportunityController(opportunityService, opportunityStore)
	analyticsController := controllers.NewAnalyticsController(analyticsService)
	memberController := controllers.NewMemberController(analyticsService)

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Session store for the console's own cookie.
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dev-session-secret"
		logger.Warn.Println("SESSION_SECRET not set, using development default")
	}
	cookieStore := cookie.NewStore([]byte(sessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   appEnv == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("memberhub_session", cookieStore))

	// Resolve templates relative to this file so tests and binaries agree.
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	router.LoadHTMLGlob(filepath.Join(basepath, "templates", "*.html"))
	router.Static("/static", "./static")

	router.GET("/health", controllers.Health)

	// Public routes
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", authController.PerformLogin)
	router.GET("/logout", authController.Logout)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	// Protected dashboard tree
	protected := router.Group("/dashboard", middleware.AuthRequired(registry, authService))
	{
		protected.GET("", controllers.ShowDashboard)

		protected.GET("/chapters", chapterController.ShowChapters)
		protected.POST("/chapters", chapterController.CreateChapter)
		protected.POST("/chapters/:id/delete", chapterController.DeleteChapter)
		protected.GET("/chapters/:id/members", chapterController.ShowChapterMembers)
		protected.GET("/chapters/:id/events", chapterController.ShowChapterEvents)
		protected.POST("/chapters/:id/members/:memberId/role", chapterController.UpdateMemberRole)

		protected.GET("/events", eventController.ShowEvents)
		protected.POST("/events", eventController.CreateEvent)
		protected.POST("/events/:id/delete", eventController.DeleteEvent)
		protected.GET("/events/:id/qrcode", eventController.EventQRCode)

		protected.GET("/subadmins", subAdminController.ShowSubAdmins)
		protected.POST("/subadmins", subAdminController.CreateSubAdmin)

		protected.GET("/opportunities", opportunityController.ShowOpportunities)
		protected.POST("/opportunities", opportunityController.CreateOpportunity)

		protected.GET("/analytics", analyticsController.ShowAnalytics)
		protected.GET("/members", memberController.ShowMembers)
		protected.GET("/members/:id", memberController.ShowMember)
	}

	router.NoRoute(controllers.NotFound)

	// CSRF protection wraps the whole engine so every form post is checked.
	csrfSecret := os.Getenv("CSRF_SECRET")
	if csrfSecret == "" {
		csrfSecret = "dev-csrf-secret-32-bytes-long!!!"
		logger.Warn.Println("CSRF_SECRET not set, using development default")
	}
	protectedHandler := csrf.Protect(
		[]byte(csrfSecret),
		csrf.Secure(appEnv == "production"),
		csrf.Path("/"),
	)(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info.Printf("Console listening on :%s (backend=%s, membership=%s)", port, backendURL, membershipURL)
	if err := http.ListenAndServe(":"+port, protectedHandler); err != nil {
		logger.Error.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}

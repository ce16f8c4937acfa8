package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/controllers"
	"github.com/arkaconsulting/regmaps-backend/middleware"
	"github.com/arkaconsulting/regmaps-backend/services"
	"github.com/arkaconsulting/regmaps-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, cache *services.Cache) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", middleware.DBMiddleware(db), controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public read paths
	api.GET("/references", controllers.GetReferences(cache))
	api.GET("/search", controllers.SearchHandler)
	api.GET("/standards", controllers.GetStandards)
	api.GET("/standards/:id", controllers.GetStandardDetail)
	api.GET("/chapters", controllers.GetChapters)
	api.GET("/chapters/:id", controllers.GetChapterDetail)
	api.GET("/sections", controllers.GetSections)
	api.GET("/sections/:id", controllers.GetSectionDetail)
	api.GET("/subsections", controllers.GetSubsections)
	api.GET("/subsections/:id", controllers.GetSubsectionDetail)
	api.GET("/workshops", controllers.GetOpenWorkshops)
	api.POST("/workshops/:id/register", controllers.RegisterForWorkshop)

	// Demo calculator, 5 requests/minute per IP with a small burst
	calcLimiter := middleware.NewRateLimiter(rate.Limit(5.0/60.0), 5)
	api.POST("/tools/capital-ratio", calcLimiter.Middleware(), controllers.CalculateCapitalRatio)

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(db))
		user.GET("/notifications", controllers.GetNotifications)
		user.GET("/notifications/unread-count", controllers.GetUnreadCount)
		user.PATCH("/notifications/read-all", controllers.MarkAllAsRead)
		user.PATCH("/notifications/:id/read", controllers.MarkNotificationAsRead)
		user.DELETE("/notifications/read", controllers.DeleteReadNotifications)
		user.DELETE("/notifications/:id", controllers.DeleteNotification)
		user.DELETE("/notifications", controllers.DeleteAllNotifications)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(db), middleware.RequireRoles("admin"))

		// RegMaps content console
		admin.POST("/standards", controllers.CreateStandard(cache))
		admin.PUT("/standards/:id", controllers.UpdateStandard(cache))
		admin.DELETE("/standards/:id", controllers.DeleteStandard(cache))

		admin.POST("/chapters", controllers.CreateChapter(cache))
		admin.PUT("/chapters/:id", controllers.UpdateChapter(cache))
		admin.DELETE("/chapters/:id", controllers.DeleteChapter(cache))

		admin.POST("/sections", controllers.CreateSection(cache))
		admin.PUT("/sections/:id", controllers.UpdateSection(cache))
		admin.DELETE("/sections/:id", controllers.DeleteSection(cache))

		admin.POST("/subsections", controllers.CreateSubsection(cache))
		admin.PUT("/subsections/:id", controllers.UpdateSubsection(cache))
		admin.DELETE("/subsections/:id", controllers.DeleteSubsection(cache))

		admin.POST("/footnotes", controllers.CreateFootnote)
		admin.GET("/footnotes", controllers.GetFootnotes)
		admin.PUT("/footnotes/:id", controllers.UpdateFootnote)
		admin.DELETE("/footnotes/:id", controllers.DeleteFootnote)

		admin.POST("/faqs", controllers.CreateFAQ)
		admin.GET("/faqs", controllers.GetFAQs)
		admin.PUT("/faqs/:id", controllers.UpdateFAQ)
		admin.DELETE("/faqs/:id", controllers.DeleteFAQ)

		admin.POST("/revisions", controllers.CreateRevision)
		admin.GET("/revisions", controllers.GetRevisions)
		admin.DELETE("/revisions/:id", controllers.DeleteRevision)

		// Chapter PDF attachments
		admin.POST("/chapters/:id/pdfs", controllers.UploadChapterPDF)
		admin.GET("/chapters/:id/pdfs", controllers.GetChapterPDFs)
		admin.DELETE("/pdfs/:id", controllers.DeleteChapterPDF)

		// Workshop panel
		admin.POST("/workshops", controllers.CreateWorkshop)
		admin.GET("/workshops", controllers.GetWorkshops)
		admin.PUT("/workshops/:id", controllers.UpdateWorkshop)
		admin.DELETE("/workshops/:id", controllers.DeleteWorkshop)
		admin.GET("/workshops/:id/registrations", controllers.GetWorkshopRegistrations)
		admin.PATCH("/registrations/:id", controllers.UpdateRegistrationStatus)
		admin.DELETE("/registrations/:id", controllers.DeleteRegistration)

		admin.POST("/notifications", controllers.CreateNotification)
	}

	r.GET("/ws/user", ws.HandleUserWebSocket)

	return r
}

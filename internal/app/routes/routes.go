package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hillcrest/college-backend/internal/app/controllers"
	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/app/models/dto"
	"github.com/hillcrest/college-backend/internal/middleware"
)

// Controllers aggregates every controller the router mounts.
type Controllers struct {
	Auth           *controllers.AuthController
	Users          *controllers.UserController
	Courses        *controllers.ContentController[models.Course]
	BlogPosts      *controllers.ContentController[models.BlogPost]
	SuccessStories *controllers.ContentController[models.SuccessStory]
	Gallery        *controllers.ContentController[models.GalleryItem]
	HeroImages     *controllers.ContentController[models.HeroImage]
	Pillars        *controllers.ContentController[models.Pillar]
	Applications   *controllers.ApplicationController
	Messages       *controllers.ContentController[models.Message]
}

// SetupRouter configures all application routes.
//
// Content resources expose public reads and admin-only writes. Applications
// and messages invert that: anyone may submit, only admins may read or manage.
func SetupRouter(
	router *gin.Engine,
	ctrl *Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/logout", ctrl.Auth.Logout)
		auth.GET("/me", authMiddleware.RequireAuth(), ctrl.Auth.Me)
	}

	// --- Content resources (public reads, admin writes) ---
	mountContent(router, "/courses", ctrl.Courses, authMiddleware)
	mountContent(router, "/blog-posts", ctrl.BlogPosts, authMiddleware)
	mountContent(router, "/success-stories", ctrl.SuccessStories, authMiddleware)
	mountContent(router, "/gallery", ctrl.Gallery, authMiddleware)
	mountContent(router, "/hero-images", ctrl.HeroImages, authMiddleware)
	mountContent(router, "/pillars", ctrl.Pillars, authMiddleware)

	// --- Applications (public submission and export, admin management) ---
	applications := router.Group("/applications")
	{
		applications.POST("", ctrl.Applications.Create)
		applications.GET("/:id/download-docx", ctrl.Applications.DownloadDocx)

		applicationsAdmin := applications.Group("")
		applicationsAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			applicationsAdmin.GET("", ctrl.Applications.List)
			applicationsAdmin.GET("/:id", ctrl.Applications.GetByID)
			applicationsAdmin.PUT("/:id", ctrl.Applications.Update)
			applicationsAdmin.DELETE("/:id", ctrl.Applications.Delete)
		}
	}

	// --- Contact messages (public submission, admin reads and deletes) ---
	messages := router.Group("/messages")
	{
		messages.POST("", ctrl.Messages.Create)

		messagesAdmin := messages.Group("")
		messagesAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			messagesAdmin.GET("", ctrl.Messages.List)
			messagesAdmin.GET("/:id", ctrl.Messages.GetByID)
			messagesAdmin.DELETE("/:id", ctrl.Messages.Delete)
		}
	}

	// --- User management (admin only) ---
	users := router.Group("/users")
	users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		users.GET("", ctrl.Users.List)
		users.GET("/:id", ctrl.Users.GetByID)
		users.POST("", ctrl.Users.Create)
		users.PUT("/:id", ctrl.Users.Update)
		users.DELETE("/:id", ctrl.Users.Delete)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

// mountContent registers the standard route set for a content resource:
// public GETs plus admin-guarded POST/PUT/DELETE.
func mountContent[T any](
	router *gin.Engine,
	path string,
	ctrl *controllers.ContentController[T],
	authMiddleware *middleware.AuthMiddleware,
) {
	group := router.Group(path)
	{
		group.GET("", ctrl.List)
		group.GET("/:id", ctrl.GetByID)

		adminProtected := group.Group("")
		adminProtected.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			adminProtected.POST("", ctrl.Create)
			adminProtected.PUT("/:id", ctrl.Update)
			adminProtected.DELETE("/:id", ctrl.Delete)
		}
	}
}

package routes

import (
	"github.com/docfill/docfill-go/handlers"
	"github.com/docfill/docfill-go/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/me", h.User.CurrentUser)

		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), h.User.ListRecipients)
			users.GET("/all", middleware.Admin(), h.User.ListAll)
			users.PUT("/:id/role", middleware.Admin(), h.User.SetRole)
		}

		templates := auth.Group("/templates")
		templates.Use(middleware.Admin())
		{
			templates.POST("/upload", h.Template.Upload)
			templates.GET("", h.Template.List)
			templates.DELETE("/:id", h.Template.Delete)
			templates.POST("/:id/reprocess", h.Template.Reprocess)
			templates.POST("/:id/fields", h.Template.CreateField)
			templates.DELETE("/fields/:id", h.Template.DeleteField)
			templates.POST("/:id/assign", h.Assignment.Assign)
		}

		assignments := auth.Group("/assignments")
		{
			assignments.GET("/my", h.Assignment.MyAssignments)
			assignments.GET("/completed", middleware.Admin(), h.Assignment.Completed)
			assignments.GET("/completed/export", middleware.Admin(), h.Assignment.ExportCompleted)
			assignments.POST("/submit-values", h.Assignment.SubmitValues)
			assignments.POST("/:id/complete", h.Assignment.Complete)
			assignments.GET("/:id/download", h.Assignment.Download)
			assignments.DELETE("/:id", h.Assignment.Delete)
		}
	}
}

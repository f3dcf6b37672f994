package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/creative-desk/docs"
	"github.com/linskybing/creative-desk/internal/api/handlers"
	"github.com/linskybing/creative-desk/internal/api/middleware"
	"github.com/linskybing/creative-desk/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos) {
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", handlers.AuthStatusHandler)
		auth.GET("/me", h.User.Me)
		auth.GET("/ws/notifications", h.WS.StreamNotifications)
		auth.GET("/dashboard", h.Dashboard.GetDashboard)
		auth.GET("/activity/recent", h.Activity.ListRecentActivity)

		users := auth.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/paging", h.User.ListUsersPaging)
			users.GET("/:id", h.User.GetUserByID)
			users.POST("", authMiddleware.Admin(), h.User.CreateUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.Admin(), h.User.DeleteUser)
		}

		departments := auth.Group("/departments")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.POST("", authMiddleware.Admin(), h.Department.CreateDepartment)
			departments.PUT("/:id", authMiddleware.Admin(), h.Department.UpdateDepartment)
			departments.DELETE("/:id", authMiddleware.Admin(), h.Department.DeleteDepartment)
		}

		products := auth.Group("/products")
		{
			products.GET("", h.Product.ListProducts)
			products.GET("/:id", h.Product.GetProduct)
			products.POST("", authMiddleware.Admin(), h.Product.CreateProduct)
			products.PUT("/:id", authMiddleware.Admin(), h.Product.UpdateProduct)
			products.DELETE("/:id", authMiddleware.Admin(), h.Product.DeleteProduct)
		}

		TicketRoutes(auth, h, authMiddleware)

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.GET("/unread-count", h.Notification.UnreadCount)
			notifications.PUT("/read-all", h.Notification.MarkAllRead)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}

		analytics := auth.Group("/analytics")
		analytics.Use(authMiddleware.Elevated())
		{
			analytics.GET("/summary", h.Analytics.Summary)
			analytics.GET("/by-status", h.Analytics.ByStatus)
			analytics.GET("/by-priority", h.Analytics.ByPriority)
			analytics.GET("/by-department", h.Analytics.ByDepartment)
			analytics.GET("/by-product", h.Analytics.ByProduct)
			analytics.GET("/workload", h.Analytics.Workload)
			analytics.GET("/trend", h.Analytics.Trend)
		}
	}
}

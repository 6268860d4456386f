package routes

import (
	"net/http"
	"time"

	"laundrify/handlers"
	"laundrify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/verify-otp", hb.VerifyOTPHandler)
		api.POST("/resend-otp", hb.ResendOTPHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.POST("/reset-password", hb.ResetPasswordHandler)
	}
}

// RegisterShopRoutes registers shop discovery endpoints. Listing and menus
// are public; writing a review requires authentication.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/laundry-shops")
	{
		api.GET("", hb.ListShopsHandler)
		api.GET("/:id", hb.GetShopHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)
		api.GET("/:id/menu", hb.GetMenuHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/:id/reviews", hb.SubmitReviewHandler)
		protected.POST("/:id/reviews/:reviewId/like", hb.LikeReviewHandler)
		protected.DELETE("/:id/reviews/:reviewId", hb.DeleteReviewHandler)
	}

	r.GET("/api/menu", hb.GetMenuHandler)
	r.GET("/api/time-slots", hb.GetTimeSlotsHandler)
}

// RegisterUserRoutes registers the authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.GET("/me/notifications", hb.ListNotificationsHandler)
		api.PUT("/me/notifications/read", hb.MarkNotificationsReadHandler)
	}
}

// RegisterAppointmentRoutes registers the customer booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id", hb.UpdateAppointmentHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))

		adminGroup.GET("/users", hb.AdminListUsersHandler)
		adminGroup.GET("/users/:id", hb.AdminGetUserHandler)
		adminGroup.PUT("/users/:id", hb.AdminUpdateUserHandler)
		adminGroup.DELETE("/users/:id", hb.AdminDeleteUserHandler)
		adminGroup.POST("/create", hb.AdminCreateAdminHandler)

		adminGroup.GET("/laundry-shops", hb.AdminListShopsHandler)
		adminGroup.POST("/laundry-shops", hb.AdminCreateShopHandler)
		adminGroup.PUT("/laundry-shops/:id", hb.AdminUpdateShopHandler)
		adminGroup.DELETE("/laundry-shops/:id", hb.AdminDeleteShopHandler)
		adminGroup.POST("/laundry-shops/:id/menu", hb.AdminAddMenuItemHandler)
		adminGroup.PUT("/laundry-shops/:id/menu/:itemId", hb.AdminUpdateMenuItemHandler)
		adminGroup.DELETE("/laundry-shops/:id/menu/:itemId", hb.AdminRemoveMenuItemHandler)
		adminGroup.POST("/laundry-shops/:id/reviews/:reviewId/respond", hb.AdminRespondReviewHandler)
		adminGroup.DELETE("/laundry-shops/:id/reviews/:reviewId", hb.AdminDeleteReviewHandler)

		adminGroup.GET("/appointments", hb.AdminListAppointmentsHandler)
		adminGroup.POST("/appointments", hb.AdminCreateAppointmentHandler)
		adminGroup.GET("/appointments/:id", hb.AdminGetAppointmentHandler)
		adminGroup.PUT("/appointments/:id/status", hb.AdminSetApptStatusHandler)
		adminGroup.DELETE("/appointments/:id", hb.AdminDeleteAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Laundrify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

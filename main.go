// File: laundrify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundrify/config"
	"laundrify/cron"
	"laundrify/database"
	appointmentRepoPkg "laundrify/database/repository/appointment"
	shopRepoPkg "laundrify/database/repository/shop"
	userRepoPkg "laundrify/database/repository/user"
	"laundrify/handlers"
	"laundrify/middleware"
	"laundrify/routes"
	"laundrify/services/booking"
	"laundrify/services/notification"
	"laundrify/services/review"
	"laundrify/services/shop"
	"laundrify/services/tasks"
	"laundrify/services/user"
	"laundrify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitOTPCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Reminder queue client shared by the booking service.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Mailer: utils.LogMailer{},
	}

	shopService := &shop.DefaultShopService{
		Repo: shopRepo,
	}

	reviewService := &review.DefaultReviewService{
		ShopRepo: shopRepo,
		UserRepo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      apptRepo,
		ShopRepo:  shopRepo,
		Users:     userService,
		Reminders: &tasks.AsynqReminderScheduler{Client: asynqClient},
	}

	// Background reminder delivery.
	cron.InitReminderWorker(apptRepo, notificationService)

	authHandler := &handlers.AuthHandler{UserService: userService}
	userHandler := &handlers.UserHandler{UserService: userService}
	shopHandler := &handlers.ShopHandler{ShopService: shopService}
	reviewHandler := &handlers.ReviewHandler{ReviewService: reviewService}
	apptHandler := &handlers.AppointmentHandler{BookingService: bookingService}
	adminHandler := &handlers.AdminHandler{
		UserService:    userService,
		ShopService:    shopService,
		BookingService: bookingService,
		ReviewService:  reviewService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler:       authHandler.RegisterHandler,
		VerifyOTPHandler:      authHandler.VerifyOTPHandler,
		ResendOTPHandler:      authHandler.ResendOTPHandler,
		LoginHandler:          authHandler.LoginHandler,
		ForgotPasswordHandler: authHandler.ForgotPasswordHandler,
		ResetPasswordHandler:  authHandler.ResetPasswordHandler,

		// Profile and notifications.
		GetProfileHandler:            userHandler.GetProfileHandler,
		UpdateProfileHandler:         userHandler.UpdateProfileHandler,
		ListNotificationsHandler:     userHandler.ListNotificationsHandler,
		MarkNotificationsReadHandler: userHandler.MarkNotificationsReadHandler,

		// Public shop discovery.
		ListShopsHandler:    shopHandler.ListShopsHandler,
		GetShopHandler:      shopHandler.GetShopHandler,
		ListReviewsHandler:  reviewHandler.ListReviewsHandler,
		GetMenuHandler:      shopHandler.GetMenuHandler,
		GetTimeSlotsHandler: shopHandler.GetTimeSlotsHandler,

		// Appointments.
		CreateAppointmentHandler: apptHandler.CreateAppointmentHandler,
		ListAppointmentsHandler:  apptHandler.ListAppointmentsHandler,
		GetAppointmentHandler:    apptHandler.GetAppointmentHandler,
		UpdateAppointmentHandler: apptHandler.UpdateAppointmentHandler,
		DeleteAppointmentHandler: apptHandler.DeleteAppointmentHandler,

		// Reviews.
		SubmitReviewHandler: reviewHandler.SubmitReviewHandler,
		LikeReviewHandler:   reviewHandler.LikeReviewHandler,
		DeleteReviewHandler: reviewHandler.DeleteReviewHandler,

		// Admin endpoints.
		AdminListUsersHandler:         adminHandler.ListUsersHandler,
		AdminGetUserHandler:           adminHandler.GetUserHandler,
		AdminUpdateUserHandler:        adminHandler.UpdateUserHandler,
		AdminDeleteUserHandler:        adminHandler.DeleteUserHandler,
		AdminCreateAdminHandler:       adminHandler.CreateAdminHandler,
		AdminListShopsHandler:         adminHandler.ListShopsHandler,
		AdminCreateShopHandler:        adminHandler.CreateShopHandler,
		AdminUpdateShopHandler:        adminHandler.UpdateShopHandler,
		AdminDeleteShopHandler:        adminHandler.DeleteShopHandler,
		AdminAddMenuItemHandler:       adminHandler.AddMenuItemHandler,
		AdminUpdateMenuItemHandler:    adminHandler.UpdateMenuItemHandler,
		AdminRemoveMenuItemHandler:    adminHandler.RemoveMenuItemHandler,
		AdminListAppointmentsHandler:  adminHandler.ListAppointmentsHandler,
		AdminGetAppointmentHandler:    adminHandler.GetAppointmentHandler,
		AdminCreateAppointmentHandler: adminHandler.CreateAppointmentHandler,
		AdminSetApptStatusHandler:     adminHandler.SetApptStatusHandler,
		AdminDeleteAppointmentHandler: adminHandler.DeleteAppointmentHandler,
		AdminRespondReviewHandler:     adminHandler.RespondReviewHandler,
		AdminDeleteReviewHandler:      adminHandler.DeleteReviewHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

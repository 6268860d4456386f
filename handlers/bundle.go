// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "laundrify/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route wiring.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	VerifyOTPHandler      gin.HandlerFunc
	ResendOTPHandler      gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc

	// Profile and notifications
	GetProfileHandler            gin.HandlerFunc
	UpdateProfileHandler         gin.HandlerFunc
	ListNotificationsHandler     gin.HandlerFunc
	MarkNotificationsReadHandler gin.HandlerFunc

	// Public shop discovery
	ListShopsHandler    gin.HandlerFunc
	GetShopHandler      gin.HandlerFunc
	ListReviewsHandler  gin.HandlerFunc
	GetMenuHandler      gin.HandlerFunc
	GetTimeSlotsHandler gin.HandlerFunc

	// Appointments
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc

	// Reviews
	SubmitReviewHandler gin.HandlerFunc
	LikeReviewHandler   gin.HandlerFunc
	DeleteReviewHandler gin.HandlerFunc

	// Admin endpoints
	AdminListUsersHandler         gin.HandlerFunc
	AdminGetUserHandler           gin.HandlerFunc
	AdminUpdateUserHandler        gin.HandlerFunc
	AdminDeleteUserHandler        gin.HandlerFunc
	AdminCreateAdminHandler       gin.HandlerFunc
	AdminListShopsHandler         gin.HandlerFunc
	AdminCreateShopHandler        gin.HandlerFunc
	AdminUpdateShopHandler        gin.HandlerFunc
	AdminDeleteShopHandler        gin.HandlerFunc
	AdminAddMenuItemHandler       gin.HandlerFunc
	AdminUpdateMenuItemHandler    gin.HandlerFunc
	AdminRemoveMenuItemHandler    gin.HandlerFunc
	AdminListAppointmentsHandler  gin.HandlerFunc
	AdminGetAppointmentHandler    gin.HandlerFunc
	AdminCreateAppointmentHandler gin.HandlerFunc
	AdminSetApptStatusHandler     gin.HandlerFunc
	AdminDeleteAppointmentHandler gin.HandlerFunc
	AdminRespondReviewHandler     gin.HandlerFunc
	AdminDeleteReviewHandler      gin.HandlerFunc
}

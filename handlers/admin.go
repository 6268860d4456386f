// File: handlers/admin.go
package handlers

import (
	"net/http"

	"laundrify/models"
	"laundrify/services/booking"
	"laundrify/services/review"
	"laundrify/services/shop"
	"laundrify/services/user"
	"laundrify/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the back-office endpoints. Every route behind it
// already passed the admin auth middleware.
type AdminHandler struct {
	UserService    user.UserService
	ShopService    shop.ShopService
	BookingService booking.BookingService
	ReviewService  review.ReviewService
}

// ---- Users ----

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUserHandler handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	usr, err := h.UserService.GetUser(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/admin/users/:id.
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.UserService.AdminUpdateUser(actorID, c.Param("id"), fields)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.AdminDeleteUser(actorID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// CreateAdminHandler handles POST /api/admin/create.
func (h *AdminHandler) CreateAdminHandler(c *gin.Context) {
	var req user.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.UserService.CreateAdmin(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr.Summary())
}

// ---- Shops and menus ----

// ListShopsHandler handles GET /api/admin/laundry-shops. Unlike the public
// listing, inactive shops are included.
func (h *AdminHandler) ListShopsHandler(c *gin.Context) {
	shops, err := h.ShopService.ListAll(false)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// CreateShopHandler handles POST /api/admin/laundry-shops.
func (h *AdminHandler) CreateShopHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req shop.CreateShopInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.ShopService.Create(actorID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateShopHandler handles PUT /api/admin/laundry-shops/:id.
func (h *AdminHandler) UpdateShopHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.ShopService.Update(c.Param("id"), fields)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteShopHandler handles DELETE /api/admin/laundry-shops/:id. Shops are
// deactivated, never removed; their appointment history stays intact.
func (h *AdminHandler) DeleteShopHandler(c *gin.Context) {
	if err := h.ShopService.Deactivate(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop deactivated"})
}

// AddMenuItemHandler handles POST /api/admin/laundry-shops/:id/menu.
func (h *AdminHandler) AddMenuItemHandler(c *gin.Context) {
	var req shop.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.ShopService.AddMenuItem(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItemHandler handles PUT /api/admin/laundry-shops/:id/menu/:itemId.
func (h *AdminHandler) UpdateMenuItemHandler(c *gin.Context) {
	var req shop.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.ShopService.UpdateMenuItem(c.Param("id"), c.Param("itemId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveMenuItemHandler handles DELETE /api/admin/laundry-shops/:id/menu/:itemId.
func (h *AdminHandler) RemoveMenuItemHandler(c *gin.Context) {
	if err := h.ShopService.RemoveMenuItem(c.Param("id"), c.Param("itemId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item removed"})
}

// ---- Appointments ----

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.BookingService.AdminList()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointmentHandler handles GET /api/admin/appointments/:id.
func (h *AdminHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.BookingService.AdminGet(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CreateAppointmentHandler handles POST /api/admin/appointments. The target
// customer comes from the body; the slot rules are the same as the customer
// path.
func (h *AdminHandler) CreateAppointmentHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		booking.CreateBookingInput
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appt, err := h.BookingService.AdminCreate(req.UserID, req.CreateBookingInput)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// SetApptStatusHandler handles PUT /api/admin/appointments/:id/status.
func (h *AdminHandler) SetApptStatusHandler(c *gin.Context) {
	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appt, err := h.BookingService.AdminSetStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointmentHandler handles DELETE /api/admin/appointments/:id.
func (h *AdminHandler) DeleteAppointmentHandler(c *gin.Context) {
	if err := h.BookingService.AdminDelete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// ---- Reviews ----

// RespondReviewHandler handles POST /api/admin/laundry-shops/:id/reviews/:reviewId/respond.
func (h *AdminHandler) RespondReviewHandler(c *gin.Context) {
	var req struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ReviewService.Respond(c.Param("id"), c.Param("reviewId"), req.Response); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Response recorded"})
}

// DeleteReviewHandler handles DELETE /api/admin/laundry-shops/:id/reviews/:reviewId.
func (h *AdminHandler) DeleteReviewHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.ReviewService.SoftDelete(actorID, true, c.Param("id"), c.Param("reviewId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

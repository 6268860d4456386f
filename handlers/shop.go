// File: handlers/shop.go
package handlers

import (
	"net/http"
	"strconv"

	"laundrify/models"
	"laundrify/services/shop"
	"laundrify/utils"

	"github.com/gin-gonic/gin"
)

// ShopHandler exposes the public shop discovery endpoints.
type ShopHandler struct {
	ShopService shop.ShopService
}

// ListShopsHandler handles GET /api/laundry-shops.
// Optional query params: category, page, limit.
func (h *ShopHandler) ListShopsHandler(c *gin.Context) {
	q := shop.ListShopsQuery{
		Category: models.MenuCategory(c.Query("category")),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		q.Limit = v
	}

	page, err := h.ShopService.List(q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetShopHandler handles GET /api/laundry-shops/:id.
func (h *ShopHandler) GetShopHandler(c *gin.Context) {
	view, err := h.ShopService.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMenuHandler handles both GET /api/menu?laundryShopId=... and
// GET /api/laundry-shops/:id/menu. Without a shop id it returns the menus of
// every active shop, which backs the browse-all-services page.
func (h *ShopHandler) GetMenuHandler(c *gin.Context) {
	shopID := c.Param("id")
	if shopID == "" {
		shopID = c.Query("laundryShopId")
	}
	if shopID == "" {
		shops, err := h.ShopService.ListAll(true)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		type shopMenu struct {
			ShopID   string            `json:"laundryShopId"`
			ShopName string            `json:"shopName"`
			Menu     []models.MenuItem `json:"menu"`
		}
		menus := make([]shopMenu, 0, len(shops))
		for _, s := range shops {
			menus = append(menus, shopMenu{ShopID: s.ID, ShopName: s.Name, Menu: s.Menu})
		}
		c.JSON(http.StatusOK, gin.H{"menus": menus})
		return
	}
	menu, err := h.ShopService.Menu(shopID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// GetTimeSlotsHandler handles GET /api/time-slots. The grid is fixed; the
// client filters out occupied slots per shop via the appointment endpoints.
func (h *ShopHandler) GetTimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": models.AllTimeSlots})
}

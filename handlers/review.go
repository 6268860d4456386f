// File: handlers/review.go
package handlers

import (
	"net/http"

	"laundrify/services/review"
	"laundrify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the shop review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// ListReviewsHandler handles GET /api/laundry-shops/:id/reviews (public).
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.List(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// SubmitReviewHandler handles POST /api/laundry-shops/:id/reviews.
// A repeat submission from the same customer overwrites their live review.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req review.SubmitReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ReviewService.Submit(userID, c.Param("id"), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted"})
}

// LikeReviewHandler handles POST /api/laundry-shops/:id/reviews/:reviewId/like.
func (h *ReviewHandler) LikeReviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	likes, err := h.ReviewService.ToggleLike(userID, c.Param("id"), c.Param("reviewId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// DeleteReviewHandler handles DELETE /api/laundry-shops/:id/reviews/:reviewId.
// Customers may remove only their own review.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	isAdmin := c.GetBool("isAdmin")
	if err := h.ReviewService.SoftDelete(userID, isAdmin, c.Param("id"), c.Param("reviewId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/middleware"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

type IReviewService interface {
	AddReview(identity models.Identity, productID int, name string, rating int, comment string) (models.Review, error)
	ListByProduct(productID int) []models.Review
}

type ReviewController struct {
	reviewService IReviewService
}

func NewReviewController(reviewService IReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type AddReviewRequest struct {
	ProductID int    `json:"productId" binding:"required"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// AddReview handles POST /api/reviews
func (rc *ReviewController) AddReview(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	review, err := rc.reviewService.AddReview(identity, req.ProductID, req.Name, req.Rating, req.Comment)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetReviewsByProduct handles GET /api/reviews/:productId. Public.
func (rc *ReviewController) GetReviewsByProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	c.JSON(http.StatusOK, rc.reviewService.ListByProduct(productID))
}

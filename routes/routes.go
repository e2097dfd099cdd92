package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/controllers"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/middleware"
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Reviews  *controllers.ReviewController
	Tokens   middleware.ITokenValidator
}

// Register wires the full HTTP surface onto r.
func Register(r *gin.Engine, c Controllers) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", c.Auth.Register)
	auth.POST("/login", c.Auth.Login)
	auth.GET("/me", middleware.RequireAuth(c.Tokens), c.Auth.Me)

	r.GET("/api/products", c.Products.GetProducts)

	orders := r.Group("/api/orders")
	orders.POST("/track", c.Orders.TrackOrder) // public, but requires email and ID
	orders.POST("", middleware.RequireAuth(c.Tokens), c.Orders.PlaceOrder)
	orders.GET("/myorders", middleware.RequireAuth(c.Tokens), c.Orders.GetMyOrders)
	orders.GET("/purchase-status/:productId", middleware.RequireAuth(c.Tokens), c.Orders.CheckPurchaseStatus)

	// Admin routes
	orders.GET("", middleware.RequireAuth(c.Tokens), middleware.RequireAdmin(), c.Orders.GetAllOrders)
	orders.PUT("/:id/status", middleware.RequireAuth(c.Tokens), middleware.RequireAdmin(), c.Orders.UpdateStatus)

	reviews := r.Group("/api/reviews")
	reviews.GET("/:productId", c.Reviews.GetReviewsByProduct)
	reviews.POST("", middleware.RequireAuth(c.Tokens), c.Reviews.AddReview)
}

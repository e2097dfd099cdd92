package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/middleware"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/services"
)

type IOrderService interface {
	PlaceOrder(identity models.Identity, input services.PlaceOrderInput) (models.Order, error)
	TrackOrder(orderID, email string) (models.Order, error)
	ListOwn(identity models.Identity) []models.Order
	ListAll() []models.Order
	SetStatus(orderID string, status models.OrderStatus) (models.Order, error)
	HasPurchased(identity models.Identity, productID int) bool
}

type OrderController struct {
	orderService IOrderService
}

func NewOrderController(orderService IOrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

type orderItemRequest struct {
	ProductID int    `json:"id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

type PlaceOrderRequest struct {
	Items                []orderItemRequest     `json:"items"`
	ShippingDetails      models.ShippingDetails `json:"shippingDetails"`
	PaymentMethod        models.PaymentMethod   `json:"paymentMethod"`
	PaymentTransactionID string                 `json:"paymentTransactionId"`
	PaymentScreenshot    string                 `json:"paymentScreenshot"`
}

type TrackOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// PlaceOrder handles POST /api/orders
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	input := services.PlaceOrderInput{
		ShippingDetails:      req.ShippingDetails,
		PaymentMethod:        req.PaymentMethod,
		PaymentTransactionID: req.PaymentTransactionID,
		PaymentScreenshot:    req.PaymentScreenshot,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	order, err := oc.orderService.PlaceOrder(identity, input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// TrackOrder handles POST /api/orders/track. Public: the (orderId, email)
// pair is the whole proof.
func (oc *OrderController) TrackOrder(c *gin.Context) {
	var req TrackOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order ID and email are required"})
		return
	}

	order, err := oc.orderService.TrackOrder(req.OrderID, req.Email)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetMyOrders handles GET /api/orders/myorders
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	c.JSON(http.StatusOK, oc.orderService.ListOwn(identity))
}

// GetAllOrders handles GET /api/orders (admin only)
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	c.JSON(http.StatusOK, oc.orderService.ListAll())
}

// UpdateStatus handles PUT /api/orders/:id/status (admin only)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	order, err := oc.orderService.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// CheckPurchaseStatus handles GET /api/orders/purchase-status/:productId
func (oc *OrderController) CheckPurchaseStatus(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hasPurchased": oc.orderService.HasPurchased(identity, productID)})
}

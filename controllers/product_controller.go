package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

type IProductService interface {
	List() []models.Product
}

type ProductController struct {
	productService IProductService
}

func NewProductController(productService IProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetProducts handles GET /api/products. Public.
func (pc *ProductController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, pc.productService.List())
}

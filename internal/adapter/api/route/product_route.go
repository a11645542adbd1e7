package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
)

// SetupProductRoutes wires product CRUD, area-scoped pricing and channel
// visibility, and the retailer-facing price resolution endpoint
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.POST("", productController.Create)
		productRouter.GET("", productController.List)
		productRouter.GET("/:id", productController.Get)
		productRouter.PATCH("/:id", productController.Update)
		productRouter.DELETE("/:id", productController.Delete)

		productRouter.PUT("/:id/prices", productController.UpsertPrice)
		productRouter.GET("/:id/prices", productController.ListPrices)
		productRouter.DELETE("/:id/prices", productController.RemovePrice)

		productRouter.PUT("/:id/visibility", productController.UpsertVisibility)
		productRouter.GET("/:id/visibility", productController.ListVisibility)
		productRouter.DELETE("/:id/visibility", productController.RemoveVisibility)

		productRouter.GET("/:id/resolve-price", productController.ResolvePrice)
	}
}

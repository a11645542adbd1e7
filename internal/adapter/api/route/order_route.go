package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
)

// SetupOrderRoutes wires order capture, item edits and the status machine
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController) {
	orderRouter := router.Group("/orders")
	{
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/:id", orderController.Get)
		orderRouter.GET("/:id/detail", orderController.GetDetail)
		orderRouter.PUT("/:id/items", orderController.UpsertItems)
		orderRouter.PATCH("/:id/status", orderController.UpdateStatus)
		orderRouter.DELETE("/:id", orderController.Delete)
	}
}

package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
)

// SetupRetailerRoutes wires retailer CRUD
func SetupRetailerRoutes(router *gin.RouterGroup, retailerController *controller.RetailerController) {
	retailerRouter := router.Group("/retailers")
	{
		retailerRouter.POST("", retailerController.Create)
		retailerRouter.GET("", retailerController.List)
		retailerRouter.GET("/:id", retailerController.Get)
		retailerRouter.PATCH("/:id", retailerController.Update)
		retailerRouter.DELETE("/:id", retailerController.Delete)
	}
}

package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
)

// SetupBrandRoutes wires brand CRUD plus the area-scoped visibility and
// margin sub-resources. Category routes nest under the owning brand.
func SetupBrandRoutes(router *gin.RouterGroup, brandController *controller.BrandController, categoryController *controller.BrandCategoryController) {
	brandRouter := router.Group("/brands")
	{
		brandRouter.POST("", brandController.Create)
		brandRouter.GET("", brandController.List)
		brandRouter.GET("/:brand_id", brandController.Get)
		brandRouter.PATCH("/:brand_id", brandController.Update)
		brandRouter.DELETE("/:brand_id", brandController.Delete)

		brandRouter.POST("/:brand_id/visibility", brandController.AddVisibility)
		brandRouter.GET("/:brand_id/visibility", brandController.ListVisibility)
		brandRouter.DELETE("/:brand_id/visibility", brandController.RemoveVisibility)

		brandRouter.PUT("/:brand_id/margins", brandController.AddOrUpdateMargin)
		brandRouter.GET("/:brand_id/margins", brandController.ListMargins)
		brandRouter.DELETE("/:brand_id/margins", brandController.RemoveMargin)

		categoryRouter := brandRouter.Group("/:brand_id/categories")
		{
			categoryRouter.POST("", categoryController.Create)
			categoryRouter.GET("", categoryController.List)
			categoryRouter.GET("/:id", categoryController.Get)
			categoryRouter.PATCH("/:id", categoryController.Update)
			categoryRouter.DELETE("/:id", categoryController.Delete)

			categoryRouter.POST("/:id/visibility", categoryController.AddVisibility)
			categoryRouter.GET("/:id/visibility", categoryController.ListVisibility)
			categoryRouter.DELETE("/:id/visibility", categoryController.RemoveVisibility)

			categoryRouter.PUT("/:id/margins", categoryController.AddOrUpdateMargin)
			categoryRouter.GET("/:id/margins", categoryController.ListMargins)
			categoryRouter.DELETE("/:id/margins", categoryController.RemoveMargin)
		}
	}
}

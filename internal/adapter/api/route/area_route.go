package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
)

// SetupAreaRoutes wires the geographic hierarchy endpoints
func SetupAreaRoutes(router *gin.RouterGroup, areaController *controller.AreaController) {
	areaRouter := router.Group("/areas")
	{
		areaRouter.POST("", areaController.Create)
		areaRouter.GET("", areaController.List)
		areaRouter.GET("/:id", areaController.Get)
		areaRouter.GET("/:id/children", areaController.ListChildren)
		areaRouter.PATCH("/:id", areaController.Update)
		areaRouter.DELETE("/:id", areaController.Delete)

		// level-by-level navigation
		areaRouter.GET("/hierarchy/nations", areaController.ListNations)
		areaRouter.GET("/nation/:id/zones", areaController.ListZones)
		areaRouter.GET("/zone/:id/regions", areaController.ListRegions)
		areaRouter.GET("/region/:id/areas", areaController.ListAreas)
		areaRouter.GET("/area/:id/divisions", areaController.ListDivisions)
	}
}

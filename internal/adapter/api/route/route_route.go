package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
)

// SetupRouteRoutes wires sales route CRUD, member assignments and visit logs
func SetupRouteRoutes(router *gin.RouterGroup, routeController *controller.RouteController) {
	routeRouter := router.Group("/routes")
	{
		routeRouter.POST("", routeController.Create)
		routeRouter.GET("", routeController.List)
		routeRouter.GET("/:id", routeController.Get)
		routeRouter.PATCH("/:id", routeController.Update)
		routeRouter.DELETE("/:id", routeController.Delete)

		routeRouter.POST("/:id/assignments", routeController.CreateAssignment)
		routeRouter.GET("/:id/assignments", routeController.ListAssignments)
		routeRouter.DELETE("/:id/assignments/:assignment_id", routeController.RemoveAssignment)

		routeRouter.POST("/:id/logs", routeController.CreateLog)
		routeRouter.GET("/:id/logs", routeController.ListLogs)
	}
}

package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/tenant"
)

// Controllers bundles every controller the router needs
type Controllers struct {
	Auth          *controller.AuthController
	Company       *controller.CompanyController
	Area          *controller.AreaController
	Brand         *controller.BrandController
	BrandCategory *controller.BrandCategoryController
	Product       *controller.ProductController
	Retailer      *controller.RetailerController
	Route         *controller.RouteController
	Order         *controller.OrderController
}

// SetupRoutes mounts the full API surface. Auth and the company registry sit
// at the top level; everything else lives under a company scope that runs the
// tenant middleware so repositories resolve the right schema.
func SetupRoutes(router *gin.Engine, validator tenant.CompanyValidator, c Controllers) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	SetupAuthRoutes(api, c.Auth)
	SetupCompanyRoutes(api, c.Company)

	companyRouter := api.Group("/companies/:company_id")
	companyRouter.Use(auth.JWTAuthMiddleware(), tenant.Middleware(validator))
	{
		SetupAreaRoutes(companyRouter, c.Area)
		SetupBrandRoutes(companyRouter, c.Brand, c.BrandCategory)
		SetupProductRoutes(companyRouter, c.Product)
		SetupRetailerRoutes(companyRouter, c.Retailer)
		SetupRouteRoutes(companyRouter, c.Route)
		SetupOrderRoutes(companyRouter, c.Order)
	}
}

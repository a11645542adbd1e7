package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
)

// SetupCompanyRoutes wires the tenant registry endpoints. These are the only
// resource routes that live outside the company scope.
func SetupCompanyRoutes(router *gin.RouterGroup, companyController *controller.CompanyController) {
	companyRouter := router.Group("/companies")
	companyRouter.Use(auth.JWTAuthMiddleware())
	{
		companyRouter.POST("", companyController.Create)
		companyRouter.GET("", companyController.List)
		companyRouter.GET("/:company_id", companyController.Get)
		companyRouter.DELETE("/:company_id", companyController.Delete)
	}
}

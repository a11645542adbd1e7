package main

// @title           Gaatha Salesforce API
// @version         1.0
// @description     Multi-tenant sales management backend: geographic area
// @description     hierarchy, brands, products with area-scoped pricing,
// @description     retailers, sales routes and order capture with GST.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication using the Bearer scheme. Example: "Bearer {token}"

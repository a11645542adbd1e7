package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/shah-dhwanil/gaatha-salesforce-sub000/docs"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/route"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/repository"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/order"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// App holds the wired application
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	log    logger.Logger
}

// NewApp connects the database, runs registry migrations and wires every
// repository, controller and route
func NewApp() (*App, error) {
	log := logger.NewLogger()

	cfg := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	// Registry tables live in the public schema; tenant schemas are migrated
	// when their company is registered.
	if err := database.RunPublicMigrations(cfg.URL()); err != nil {
		db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	areaRepo := repository.NewPostgresAreaRepository(db)
	brandRepo := repository.NewPostgresBrandRepository(db)
	categoryRepo := repository.NewPostgresBrandCategoryRepository(db)
	productRepo := repository.NewPostgresProductRepository(db)
	retailerRepo := repository.NewPostgresRetailerRepository(db)
	routeRepo := repository.NewPostgresRouteRepository(db)
	orderRepo := repository.NewPostgresOrderRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	memberRepo := repository.NewPostgresMemberRepository(db)

	calculator := order.NewCalculator(productRepo, retailerRepo)

	controllers := route.Controllers{
		Auth:          controller.NewAuthController(memberRepo, jwtService, log),
		Company:       controller.NewCompanyController(companyRepo, log),
		Area:          controller.NewAreaController(areaRepo, log),
		Brand:         controller.NewBrandController(brandRepo, log),
		BrandCategory: controller.NewBrandCategoryController(categoryRepo, brandRepo, log),
		Product:       controller.NewProductController(productRepo, retailerRepo, log),
		Retailer:      controller.NewRetailerController(retailerRepo, log),
		Route:         controller.NewRouteController(routeRepo, log),
		Order:         controller.NewOrderController(orderRepo, retailerRepo, calculator, log),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	route.SetupRoutes(router, companyRepo, controllers)

	return &App{router: router, db: db, log: log}, nil
}

// Run starts the HTTP server on PORT (default 8080)
func (a *App) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	a.log.Info("starting server", "port", port)
	return a.router.Run(":" + port)
}

// Close releases application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

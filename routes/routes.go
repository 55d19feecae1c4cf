package routes

import (
	"omex-backend/config"
	"omex-backend/controllers"
	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	s := store.New(db)
	authController := controllers.NewAuthController(db)
	productController := controllers.NewProductController(s)
	customerController := controllers.NewCustomerController(s)
	saleController := controllers.NewSaleController(s)
	dashboardController := controllers.NewDashboardController(db, s)
	reportController := controllers.NewReportController(db)
	profileController := controllers.NewProfileController(s)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Product routes
		products := api.Group("/products")
		{
			products.POST("", productController.CreateProduct)
			products.GET("", productController.GetProducts)
			products.GET("/:id", productController.GetProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Sale routes
		sales := api.Group("/sales")
		{
			sales.POST("", saleController.CreateSale)
			sales.GET("", saleController.GetSales)
			sales.GET("/:id", saleController.GetSale)
			sales.PUT("/:id", saleController.UpdateSale)
			sales.POST("/:id/complete", saleController.CompleteSale)
			sales.POST("/:id/cancel", saleController.CancelSale)
			sales.DELETE("/:id", saleController.DeleteSale)
		}

		// Reports routes
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
		}
	}

	return r
}

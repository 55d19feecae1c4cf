package main

import (
	"fmt"
	"log"

	"omex-backend/config"
	"omex-backend/models"
	"omex-backend/routes"
	"omex-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("startup aborted: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.StockAlertLog{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	alertService := services.NewStockAlertService(db)
	alertService.StartScheduler()

	r := routes.SetupRouter(db)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

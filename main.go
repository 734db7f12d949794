package main

import (
	"log"

	"learnex/config"
	"learnex/database"
	authRoutes "learnex/routers/authRoutes"
	dashboardRoutes "learnex/routers/dashboardRoutes"
	pageRoutes "learnex/routers/pageRoutes"
	"learnex/session"
	"learnex/utils"
	"learnex/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.SeedCourses()
	session.Setup()

	sweeper := utils.StartSessionSweeper()
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{
		Views: views.Engine(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	pageRoutes.SetupPageRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

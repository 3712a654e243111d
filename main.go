package main

import (
	"blog-api/internal/config"
	"blog-api/internal/routes"
	"blog-api/pkg/database"
	"blog-api/pkg/utils"
	"blog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func init() {
	// Load all configs
	if err := config.LoadConfig(); err != nil {
		utils.LogFatal("load configs", err)
	}

	// Initialize validator
	validator.InitValidator()
}

func main() {
	// Connect to database
	db, err := database.Connect()
	if err != nil {
		utils.LogFatal("connect to database", err)
	}

	app := fiber.New(fiber.Config{})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.SetupRoutes(app, db)

	if err := app.Listen(":" + config.Env.Server.Port); err != nil {
		utils.LogFatal("start server", err)
	}
}

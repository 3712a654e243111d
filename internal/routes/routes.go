package routes

import (
	"blog-api/internal/handlers"
	"blog-api/internal/middleware"
	"blog-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwtService := services.NewJWTService()
	uploadService := services.NewUploadService()

	authMiddleware := middleware.NewAuthMiddleware(db, jwtService)
	authHandler := handlers.NewAuthHandler(db, jwtService)
	postHandler := handlers.NewPostHandler(db, uploadService)
	adminHandler := handlers.NewAdminHandler(db)

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Uploaded images are served as static files
	app.Static(uploadService.PublicPath(), uploadService.Dir())

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authMiddleware.RequireAuth(), authHandler.Me)

	// Post routes
	posts := api.Group("/posts")
	posts.Post("/", authMiddleware.RequireAuth(), postHandler.Create)
	posts.Get("/", postHandler.List)
	posts.Get("/my-posts", authMiddleware.RequireAuth(), postHandler.MyPosts)
	posts.Get("/:id", authMiddleware.OptionalAuth(), postHandler.Get)
	posts.Put("/:id", authMiddleware.RequireAuth(), postHandler.Update)
	posts.Delete("/:id", authMiddleware.RequireAuth(), postHandler.Delete)

	// Admin routes require authentication and an active admin account
	admin := api.Group("/admin", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:userId/status", adminHandler.UpdateUserStatus)
	admin.Get("/posts", adminHandler.ListPosts)
	admin.Delete("/posts/:id/soft-delete", adminHandler.SoftDelete)
	admin.Put("/posts/:id/restore", adminHandler.Restore)
}

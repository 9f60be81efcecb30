package main

import (
	"log"
	"os"

	"skatelog/config"
	"skatelog/controllers"
	"skatelog/database"
	"skatelog/middleware"
	"skatelog/models"
	"skatelog/routes"
	"skatelog/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := models.RegisterValidations(v); err != nil {
			log.Fatal("Failed to register validations:", err)
		}
	}

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CurrentUser())

	r.LoadHTMLGlob("templates/*.html")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	r.Static("/uploads", cfg.UploadDir)

	weatherService := services.NewWeatherService(cfg.WeatherBaseURL)
	postService := services.NewPostService(db, weatherService)
	commentService := services.NewCommentService(db)
	userService := services.NewUserService(db)

	postController := controllers.NewPostController(postService, commentService, cfg.UploadDir)
	authController := controllers.NewAuthController(userService)

	routes.SetupRoutes(r, postController, authController)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

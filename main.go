package main

import (
	"log"
	"net/http"
	"os"

	"usm-backend/config"
	"usm-backend/handlers"
	"usm-backend/helper"
	"usm-backend/middleware"
	"usm-backend/repositories"
	"usm-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// The tables must exist before serving; a misconfigured database stops
	// the process here.
	if err := repositories.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Upload folder
	if err := os.MkdirAll(config.UploadFolder(), 0o755); err != nil {
		log.Fatalf("Failed to create upload folder: %v", err)
	}

	httpHelper := helper.NewHTTPHelper()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	roleRepo := repositories.NewRoleRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, profileRepo)
	profileService := services.NewProfileService(profileRepo)
	imageService := services.NewImageService(imageRepo)
	roleService := services.NewRoleService(roleRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	profileHandler := handlers.NewProfileHandler(profileService, httpHelper)
	imageHandler := handlers.NewImageHandler(imageService, httpHelper)
	roleHandler := handlers.NewRoleHandler(roleService, httpHelper)

	// Setup router
	router := gin.Default()
	router.Use(middleware.CORS())

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})

	// Users
	router.POST("/register", userHandler.Register)
	router.GET("/users", userHandler.GetUsers)
	router.GET("/user/:user_id", userHandler.GetUser)
	router.GET("/user_details", userHandler.GetAllUserDetails)
	router.GET("/user_details/:user_id", userHandler.GetUserDetails)
	router.GET("/user_details_id/:user_id", userHandler.GetUserWithDetails)
	router.PUT("/user/:user_id", userHandler.UpdateUser)
	router.DELETE("/user/:user_id", userHandler.DeleteUser)
	router.DELETE("/delete_profiles/:user_id", userHandler.PurgeUser)

	// Profiles
	router.POST("/user_profile/:user_id", profileHandler.CreateProfile)
	router.PUT("/user_profile/:user_id", profileHandler.UpdateProfile)
	router.DELETE("/delete_details/:user_id", profileHandler.DeleteProfile)

	// Images
	router.POST("/user_images", imageHandler.UploadImage)
	router.GET("/images/:user_id", userHandler.GetUserImages)

	// Roles
	router.GET("/user_roles/:user_id", roleHandler.GetUserRole)
	router.POST("/update_roles/:user_id", roleHandler.CreateRole)
	router.PUT("/update_roles/:user_id", roleHandler.UpdateRole)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

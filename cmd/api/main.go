package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/travelshare/travelshare-backend/internal/config"
	"github.com/travelshare/travelshare-backend/internal/handler"
	"github.com/travelshare/travelshare-backend/internal/middleware"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/internal/push"
	"github.com/travelshare/travelshare-backend/internal/repository"
	"github.com/travelshare/travelshare-backend/internal/service"
	"github.com/travelshare/travelshare-backend/pkg/database"
	appLogger "github.com/travelshare/travelshare-backend/pkg/logger"
	"github.com/travelshare/travelshare-backend/pkg/planner"
	pushPkg "github.com/travelshare/travelshare-backend/pkg/push"
	"github.com/travelshare/travelshare-backend/pkg/storage"
	"github.com/travelshare/travelshare-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := appLogger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db := database.NewDatabase()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Group{},
		&models.Comment{},
		&models.Notification{},
		&models.Report{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Storage
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Push delivery
	fcmClient := pushPkg.NewFCMClient(cfg.FCM.ServerKey, cfg.FCM.Endpoint)
	pushRouter := push.NewRouter(fcmClient, userRepo, zapLogger)

	// Travel planner export
	plannerClient := planner.NewClient(cfg.Planner.Endpoint)

	// Services
	authService := service.NewAuthService(userRepo)
	photoService := service.NewPhotoService(
		photoRepo,
		commentRepo,
		notificationRepo,
		reportRepo,
		r2Storage,
		plannerClient,
		zapLogger,
	)
	groupService := service.NewGroupService(groupRepo)
	commentService := service.NewCommentService(commentRepo, photoRepo, notificationRepo, zapLogger)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, fcmClient)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	photoHandler := handler.NewPhotoHandler(photoService, validator)
	groupHandler := handler.NewGroupHandler(groupService, validator)
	commentHandler := handler.NewCommentHandler(commentService, validator)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	pushHandler := handler.NewPushHandler(pushRouter)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public photo routes
	api.Get("/photos", photoHandler.GetDiscoverFeed)
	api.Get("/photos/search", photoHandler.SearchPhotos)
	api.Get("/photos/type/:type", photoHandler.GetPhotosByType)
	api.Get("/photos/author/:authorId", photoHandler.GetPhotosByAuthor)
	api.Get("/photos/:id", photoHandler.GetPhotoDetails)
	api.Get("/photos/:photoId/comments", commentHandler.GetPhotoComments)

	// Public group routes
	api.Get("/groups/search", groupHandler.SearchGroups)
	api.Get("/groups/:id", groupHandler.GetGroup)

	// Push ingestion (inbound from the messaging infrastructure)
	api.Post("/push/message", pushHandler.HandleMessage)
	api.Post("/push/token", pushHandler.RegisterToken)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", authHandler.GetMyProfile)
		user.Put("/profile", authHandler.UpdateProfile)

		photos := api.Group("/photos")
		photos.Post("/", photoHandler.PublishPhoto)
		photos.Delete("/:id", photoHandler.DeletePhoto)
		photos.Post("/:id/like", photoHandler.LikePhoto)
		photos.Delete("/:id/like", photoHandler.UnlikePhoto)
		photos.Post("/:id/report", photoHandler.ReportPhoto)
		photos.Post("/:id/share", photoHandler.SharePhoto)
		photos.Delete("/:id/share/:groupId", photoHandler.UnsharePhoto)
		photos.Post("/:id/export", photoHandler.ExportPhoto)
		photos.Post("/:photoId/comments", commentHandler.AddComment)

		comments := api.Group("/comments")
		comments.Delete("/:id", commentHandler.DeleteComment)

		groups := api.Group("/groups")
		groups.Get("/", groupHandler.GetMyGroups)
		groups.Post("/", groupHandler.CreateGroup)
		groups.Post("/:id/join", groupHandler.JoinGroup)
		groups.Post("/:id/leave", groupHandler.LeaveGroup)
		groups.Get("/:groupId/photos", photoHandler.GetGroupPhotos)

		notifications := api.Group("/notifications")
		notifications.Get("/", notificationHandler.GetMyNotifications)
		notifications.Get("/unread-count", notificationHandler.GetUnreadCount)
		notifications.Put("/read-all", notificationHandler.MarkAllAsRead)
		notifications.Put("/:id/read", notificationHandler.MarkAsRead)

		subscriptions := api.Group("/subscriptions")
		subscriptions.Post("/users/:userId", notificationHandler.SubscribeToUser)
		subscriptions.Post("/groups/:groupId", notificationHandler.SubscribeToGroup)
		subscriptions.Post("/locations/:locationId", notificationHandler.SubscribeToLocation)
		subscriptions.Post("/tags/:tag", notificationHandler.SubscribeToTag)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}

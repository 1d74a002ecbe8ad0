package router

import (
	"net/http"
	"os"
	"time"

	"findit/internal/handlers"
	"findit/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New builds the fully configured engine: sessions, CORS, upload serving,
// envelope-shaped 404/405 responses, and the API routes.
func New() *gin.Engine {
	r := gin.Default()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("findit_session", store))

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.LoadUser())

	// Uploaded images are served straight from the content directory
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./static/uploads"
	}
	r.Static("/uploads", uploadDir)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	})

	RegisterRoutes(r)

	return r
}

func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	itemHandler := handlers.NewItemHandler()
	claimHandler := handlers.NewClaimHandler()
	userHandler := handlers.NewUserHandler()
	categoryHandler := handlers.NewCategoryHandler()
	notificationHandler := handlers.NewNotificationHandler()
	messageHandler := handlers.NewMessageHandler()

	api := r.Group("/api")

	// Public routes: the reporting workflows are open to anonymous users
	api.POST("/login", authHandler.Login)
	api.POST("/register", authHandler.Register)
	api.POST("/logout", authHandler.Logout)

	api.GET("/items", itemHandler.List)
	api.GET("/items/:id", itemHandler.Detail)
	api.DELETE("/items/:id", itemHandler.Delete)
	api.POST("/report-lost", itemHandler.ReportLost)
	api.POST("/report-found", itemHandler.ReportFound)
	api.POST("/items/:id/claim", claimHandler.Submit)
	api.POST("/items/:id/recover", itemHandler.Recover)
	api.POST("/items/:id/message", messageHandler.Send)

	api.GET("/categories", categoryHandler.List)

	api.GET("/users/:id/stats", userHandler.Stats)
	api.PUT("/users/:id", userHandler.UpdateProfile)

	// Session-scoped routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)

		authorized.GET("/messages", messageHandler.Inbox)
		authorized.POST("/messages/:id/read", messageHandler.Read)
	}
}

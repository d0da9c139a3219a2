package main

import (
	"context"
	"log"
	"os"
	"time"

	"cocinacasera/internal/auth"
	"cocinacasera/internal/catalog"
	"cocinacasera/internal/db"
	"cocinacasera/internal/middleware"
	"cocinacasera/internal/order"
	"cocinacasera/internal/session"
	"cocinacasera/internal/settings"
	"cocinacasera/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	docStore := store.NewPostgresStore(pgDB)

	if err := catalog.SeedDefaults(context.Background(), docStore); err != nil {
		log.Fatal("❌ Catalog seed failed:", err)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewStoreUserRepository(docStore)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if _, err := authService.CreateAdmin(context.Background(), email, password); err != nil {
			log.Fatal("❌ Admin seed failed:", err)
		}
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/anonymous", authHandler.Anonymous)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	catalogService := catalog.NewService(docStore)
	if err := catalogService.Start(context.Background()); err != nil {
		log.Fatal("❌ Catalog load failed:", err)
	}
	defer catalogService.Stop()

	settingsService := settings.NewService(docStore)

	orderRepo := order.NewStoreRepository(docStore)
	orderService := order.NewService(orderRepo, settingsService, authService)

	sessionRepo := session.NewStoreRepository(docStore)
	sessionService := session.NewService(sessionRepo, catalogService)
	sessionService.Start()
	defer sessionService.Stop()

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	settingsHandler := settings.NewHandler(settingsService)
	orderHandler := order.NewHandler(orderService)
	sessionHandler := session.NewHandler(sessionService, orderService)

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/catalogs", catalogHandler.GetCatalogs)
	r.GET("/catalogs/:collection", catalogHandler.GetCollection)
	r.GET("/settings", settingsHandler.GetSettings)

	// ───────────────────────── SESSION ROUTES ─────────────────────────
	sessions := r.Group("/sessions")
	sessions.Use(middleware.AuthMiddleware())
	{
		sessions.POST("", sessionHandler.Create)
		sessions.GET("/:id", sessionHandler.Get)
		sessions.POST("/:id/meals", sessionHandler.AddMeal)
		sessions.POST("/:id/meals/:mealId/duplicate", sessionHandler.DuplicateMeal)
		sessions.DELETE("/:id/meals/:mealId", sessionHandler.RemoveMeal)
		sessions.PATCH("/:id/meals/:mealId", sessionHandler.Apply)
		sessions.POST("/:id/meals/:mealId/additions", sessionHandler.AddAddition)
		sessions.PATCH("/:id/meals/:mealId/additions/:additionId", sessionHandler.UpdateAddition)
		sessions.GET("/:id/replacements", sessionHandler.ListReplacements)
		sessions.GET("/:id/summary", sessionHandler.Summary)
		sessions.POST("/:id/submit", sessionHandler.Submit)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", orderHandler.Submit)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Orders
		admin.GET("/orders", orderHandler.ListOrders)
		admin.GET("/orders/:id", orderHandler.GetOrder)
		admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		// Users
		admin.GET("/users", authHandler.ListUsers)

		// Settings
		admin.PUT("/settings/ordering", settingsHandler.SetOrderingDisabled)

		// Catalog
		admin.POST("/catalogs/:collection", catalogHandler.CreateOption)
		admin.PATCH("/catalogs/:collection/:id", catalogHandler.UpdateOption)
		admin.DELETE("/catalogs/:collection/:id", catalogHandler.DeleteOption)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}

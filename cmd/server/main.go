package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmintrica/fishing-records/internal/api/api_admin"
	"github.com/cosmintrica/fishing-records/internal/api/api_auth"
	"github.com/cosmintrica/fishing-records/internal/api/api_dev"
	"github.com/cosmintrica/fishing-records/internal/api/api_leaderboard"
	"github.com/cosmintrica/fishing-records/internal/api/api_location"
	"github.com/cosmintrica/fishing-records/internal/api/api_profile"
	"github.com/cosmintrica/fishing-records/internal/api/api_record"
	"github.com/cosmintrica/fishing-records/internal/config"
	"github.com/cosmintrica/fishing-records/internal/database"
	"github.com/cosmintrica/fishing-records/internal/middleware"
	"github.com/cosmintrica/fishing-records/internal/seed"
	"github.com/cosmintrica/fishing-records/internal/store"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_auth"
)

func main() {
	fmt.Println("Starting server...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	var recordStore store.Store
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := database.Connect(cfg.Database.DSN)
		if err != nil {
			log.Fatal(err)
		}
		recordStore, err = store.NewPostgresStore(db)
		if err != nil {
			log.Fatal(err)
		}
	default:
		recordStore = store.NewMemoryStore()
	}

	registry, err := seed.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := registry.Apply(context.Background(), recordStore); err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded %d fishing locations", registry.LocationCount())

	issuer := &utils_auth.TokenIssuer{
		Secret:     []byte(cfg.JWT.Secret),
		AccessTTL:  time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTTLMinutes) * time.Minute,
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.DeploymentEnv))
	r.Use(middleware.RequestIDProvider())
	r.Use(middleware.ErrorLogging())
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.StoreProvider(recordStore))
	r.Use(middleware.ErrorHandler())

	{
		api := r.Group("/api")
		api.GET("/healthcheck", api_dev.HealthCheck)
		api.GET("/stats", api_dev.Stats)

		auth := api.Group("/auth")
		auth.POST("/register", api_auth.Register(issuer))
		auth.POST("/login", api_auth.Login(issuer))
		auth.POST("/refresh", api_auth.Refresh(issuer))

		api.GET("/fishing-locations", api_location.List)
		api.GET("/fishing-locations/:id", api_location.Get)
		api.GET("/fish-species", api_location.Species(registry))

		api.GET("/fishing-records", api_record.List)
		api.GET("/fishing-records/user/:userId", api_record.ListByUser)
		api.POST("/fishing-records", middleware.Auth(issuer), api_record.Create)

		api.GET("/leaderboards/:type", api_leaderboard.Get)
		api.GET("/users/:userId/profile", api_profile.View)

		profile := api.Group("/profile", middleware.Auth(issuer))
		profile.GET("", api_profile.Me)
		profile.PUT("", api_profile.UpdateMe)

		admin := api.Group("/admin", middleware.Auth(issuer), middleware.RequireAdmin(cfg.Admin.Email))
		admin.POST("/verify-record/:id", api_admin.VerifyRecord)
		admin.GET("/pending-records", api_admin.PendingRecords)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

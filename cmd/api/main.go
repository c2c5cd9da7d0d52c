package main

import (
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ridepoolhq/carpool-backend/internal/config"
	"github.com/ridepoolhq/carpool-backend/internal/handlers"
	"github.com/ridepoolhq/carpool-backend/internal/ledger"
	"github.com/ridepoolhq/carpool-backend/internal/middleware"
	"github.com/ridepoolhq/carpool-backend/internal/store"
	"github.com/ridepoolhq/carpool-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	st := store.Open(cfg.DataFile)
	users := ledger.NewUserLedger(st)
	rides := ledger.NewRideLedger(st)
	bookings := ledger.NewBookingLedger(st)
	queries := ledger.NewQueries(st)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestMetrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/signup", handlers.Signup(users, cfg))
		api.POST("/login", handlers.Login(users, cfg))
		api.POST("/logout", handlers.Logout())
		api.GET("/me", handlers.Me(users, cfg))
		api.GET("/rides", handlers.ListRides(rides))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			protected.POST("/rides", handlers.CreateRide(rides))
			protected.POST("/rides/:id/join", handlers.JoinRide(bookings))
			protected.POST("/rides/:id/cancel", handlers.CancelBooking(bookings))
			protected.DELETE("/rides/:id", handlers.DeleteRide(rides))
			protected.GET("/my/rides", handlers.MyRides(queries))
		}
	}

	addr := ":" + strconv.Itoa(cfg.AppPort)
	log.Info("starting carpool api", zap.String("addr", addr), zap.String("data_file", cfg.DataFile))

	if err := r.Run(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

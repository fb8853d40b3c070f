package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/navya24shree/Campus-Event-Management-System/config"
	"github.com/navya24shree/Campus-Event-Management-System/db"
	"github.com/navya24shree/Campus-Event-Management-System/logger"
	"github.com/navya24shree/Campus-Event-Management-System/metrics"
	"github.com/navya24shree/Campus-Event-Management-System/middlewares"
	"github.com/navya24shree/Campus-Event-Management-System/models"
	"github.com/navya24shree/Campus-Event-Management-System/routes"
	"github.com/navya24shree/Campus-Event-Management-System/utils"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Debug); err != nil {
		panic(err)
	}
	log := logger.Log

	// MySQL
	sqldb, err := db.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatalw("mysql connect failed", "error", err)
	}
	defer sqldb.Close()
	if err := db.CreateTables(sqldb); err != nil {
		log.Fatalw("schema bootstrap failed", "error", err)
	}
	// Provisioning is a separate, idempotent step.
	if err := db.EnsureAdmin(sqldb, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalw("admin provisioning failed", "error", err)
	}
	log.Info("connected to mysql")

	// Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	inv := utils.NewCacheInvalidator(rdb)

	metrics.Register()

	// Gin + middlewares
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	server := gin.Default()
	server.Use(middlewares.ResponseCache(rdb, 30*time.Second))

	routes.RegisterRoutes(server,
		models.NewSQLUserRepository(sqldb),
		models.NewSQLEventRepository(sqldb),
		models.NewSQLRegistrationRepository(sqldb),
		models.NewSQLFeedbackRepository(sqldb),
		rdb, inv)

	// CORS allowlist wraps the whole engine.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(server)

	log.Infow("server listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

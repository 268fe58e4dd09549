package main

import (
	"os"
	"time"

	"resto-pos/internal/auth"
	"resto-pos/internal/config"
	"resto-pos/internal/database"
	"resto-pos/internal/handlers"
	"resto-pos/internal/mail"
	"resto-pos/internal/metrics"
	"resto-pos/internal/middleware"
	"resto-pos/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := observability.NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	cfg := config.Load(logger)
	// .env may have set the log options; rebuild with the final values.
	logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	store, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("store ready", "path", cfg.DBPath)

	tokens := auth.NewManager(cfg.JWTSecret)
	mailer := mail.New(mail.SMTP{
		Server:    cfg.SMTPServer,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		Recipient: cfg.SMTPRecipient,
	})

	var adminHash []byte
	if cfg.AdminPassword != "" {
		adminHash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash admin password", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("ADMIN_PASSWORD is unset, login is disabled")
	}

	h := handlers.New(store, tokens, mailer, logger, cfg.AdminUser, adminHash)

	r := gin.Default()
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.GET("/metrics", metrics.Handler())
	r.POST("/login", h.Login)
	r.GET("/api/system/status", h.GetSystemStatus)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(tokens))
	{
		api.GET("/products", h.GetProducts)
		api.POST("/products", h.AddProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.SaveSettings)

		api.POST("/sales", h.ProcessSale)
		api.GET("/transactions", h.GetTransactions)
		api.DELETE("/transactions/:id", h.DeleteTransaction)
		api.GET("/transactions/:id/receipt", h.GetTransactionReceipt)

		api.GET("/analytics", h.GetAnalytics)

		api.GET("/backup/export", h.ExportSnapshot)
		api.POST("/backup/import", h.ImportSnapshot)

		api.POST("/receipts", h.RenderReceipt)
		api.GET("/receipts/:number/qr", h.GetReceiptQR)

		api.POST("/support", h.SendSupport)
	}

	logger.Info("server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

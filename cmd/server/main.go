package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alumni-connect-api/config"
	"alumni-connect-api/internal/auth"
	"alumni-connect-api/internal/cache"
	"alumni-connect-api/internal/community"
	"alumni-connect-api/internal/database"
	"alumni-connect-api/internal/logs"
	"alumni-connect-api/internal/profile"
	"alumni-connect-api/internal/server"
	"alumni-connect-api/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	log := newLogger(cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	signer, err := token.NewHMAC(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.WithError(err).Fatal("Failed to build token signer")
	}

	db, err := database.Open(cfg.DSN())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	// Requests may arrive before the tables exist; the first ones fail until
	// migration completes.
	database.MigrateAsync(db, &auth.User{}, &community.Community{}, &logs.SystemLog{})

	profileService := &profile.ProfileService{DB: db}
	communityService := &community.CommunityService{DB: db}

	if cfg.CacheEnabled() {
		rdb, err := cache.NewClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, continuing without cache")
		} else {
			defer rdb.Close()
			profileService.Cache = cache.NewViewCache[auth.ProfileSummary](rdb, "profile", cfg.CacheTTL)
			communityService.Cache = cache.NewViewCache[[]community.Community](rdb, "communities", cfg.CacheTTL)
			communityService.Version = cache.NewRedisCounter(rdb, "communities:version")
			log.WithField("addr", cfg.RedisAddr).Info("Redis cache enabled")
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := server.NewRouter(server.Deps{
		Log:           log,
		AllowedOrigin: cfg.AllowedOrigin,
		Auth:          &auth.AuthService{DB: db, Signer: signer},
		Profiles:      profileService,
		Communities:   communityService,
		Logs:          &logs.LogService{DB: db},
		Verifier:      signer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.WithField("signal", sig.String()).Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server exiting")
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	return log
}

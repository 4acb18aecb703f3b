package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-jobportal-api/internal/core/auth"
	"go-jobportal-api/internal/core/cache"
	"go-jobportal-api/internal/core/config"
	"go-jobportal-api/internal/core/database"
	"go-jobportal-api/internal/core/identity"
	"go-jobportal-api/internal/core/logger"
	"go-jobportal-api/internal/core/server"
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/repo"
	"go-jobportal-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.Rotate.Enable {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Enable:     true,
			Filename:   cfg.Log.Rotate.Filename,
			MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
			MaxBackups: cfg.Log.Rotate.MaxBackups,
			MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
			Compress:   cfg.Log.Rotate.Compress,
		})
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Job{}, &domain.Application{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	deps := router.Deps{
		Users:       repo.NewUserRepo(db),
		Jobs:        repo.NewJobRepo(db),
		Apps:        repo.NewApplicationRepo(db),
		Ident:       buildResolver(cfg),
		Pass:        buildScheme(cfg),
		CORSOrigins: cfg.CORS.AllowOrigins,
	}
	if cfg.Redis.Addr != "" {
		deps.JobCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		deps.JobCacheTTL = time.Duration(cfg.Redis.JobTTLSec) * time.Second
		log.Info("job cache enabled", zap.String("redis", cfg.Redis.Addr))
	}

	r := router.NewAPIEngine(log, deps)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("job portal api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("job portal api start FAILED", zap.Error(err))
		}
	}()
	log.Info("job portal api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("job portal api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func buildResolver(cfg *config.Config) identity.Resolver {
	if cfg.Identity.Mode == "jwt" {
		return identity.BearerToken{Tokens: &auth.JWTer{
			Secret: []byte(cfg.Identity.JWTSecret),
			Issuer: cfg.Identity.JWTIssuer,
			TTL:    time.Duration(cfg.Identity.JWTTTLMin) * time.Minute,
		}}
	}
	// default: trust the employer_id/applicant_id parameters clients
	// already send
	return identity.TrustedParam{}
}

func buildScheme(cfg *config.Config) identity.PasswordScheme {
	if cfg.Identity.PasswordScheme == "bcrypt" {
		return identity.Bcrypt{}
	}
	return identity.Plaintext{}
}

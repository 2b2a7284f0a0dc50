package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/config"
	"github.com/iliyamo/property-management/internal/database"
	"github.com/iliyamo/property-management/internal/handler"
	"github.com/iliyamo/property-management/internal/middleware"
	"github.com/iliyamo/property-management/internal/payments"
	"github.com/iliyamo/property-management/internal/queue"
	"github.com/iliyamo/property-management/internal/repository"
	"github.com/iliyamo/property-management/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	gateway, err := payments.NewMercadoPagoGateway(cfg.PaymentToken, cfg.PaymentMock)
	if err != nil {
		log.Fatalf("payment gateway: %v", err)
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	props := repository.NewPropertyRepo(db)
	tenants := repository.NewTenantRepo(db)
	pays := repository.NewPaymentRepo(db)
	maint := repository.NewMaintenanceRepo(db)
	docs := repository.NewDocumentRepo(db)

	auth := handler.NewAuthHandler(cfg, users, tokens)
	manager := handler.NewManagerHandler(cfg, props, tenants, pays, maint, docs, gateway)
	portal := handler.NewTenantPortalHandler(tenants, props, pays, maint)

	e := echo.New()

	// Redis backs the response cache and the rate limiter; when it is
	// unreachable both degrade to no-ops and the API keeps serving.
	rdb := config.NewRedisClient()
	var cached echo.MiddlewareFunc
	if rdb != nil {
		rlCfg := config.LoadRateLimitConfig()
		if rlCfg.Enabled {
			e.Use(middleware.NewTokenBucket(rlCfg, rdb))
		}
		cacheCfg := config.LoadCacheConfig()
		if cacheCfg.Enabled {
			cached = middleware.NewRedisCache(cacheCfg, rdb)
		}
	} else {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterManager(e, manager, cfg.JWTSecret, cached)
	router.RegisterTenantPortal(e, portal, cfg.JWTSecret)

	// Dead refresh tokens pile up with every login; sweep them hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := tokens.DeleteExpired(ctx, 24*time.Hour)
			cancel()
			if err != nil {
				log.Printf("token sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("token sweep removed %d rows", n)
			}
		}
	}()

	// Broker consumers append domain events to files under logs/. They
	// reconnect forever and never take the API down.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()
	go func() {
		if err := queue.StartMaintenanceConsumer(); err != nil {
			log.Printf("maintenance consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

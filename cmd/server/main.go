package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/saavyshop/storefront/internal/config"
	"github.com/saavyshop/storefront/internal/database"
	"github.com/saavyshop/storefront/internal/handler"
	"github.com/saavyshop/storefront/internal/license"
	"github.com/saavyshop/storefront/internal/repository"
	"github.com/saavyshop/storefront/internal/router"
)

func main() {
	// Best effort: a missing .env file is fine, the config falls back to
	// development defaults.
	_ = godotenv.Load()
	cfg := config.Load()

	validator := license.New(cfg.LicenseFile, "PRODUCT_KEY")
	if err := validator.EnsureValid(); err != nil {
		log.Fatal(err)
	}
	if !validator.IsValid(false) {
		log.Print("no product key configured; running unlicensed")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db, cfg.SiteName); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	if rdb == nil {
		log.Print("redis not configured; response cache disabled")
	}

	h := handler.New(
		repository.NewProductRepo(db),
		repository.NewSiteContentRepo(db),
		repository.NewSiteSettingsRepo(db, cfg.SiteName),
		repository.NewCheckoutConfigRepo(db),
		validator, rdb, cacheCfg, cfg.EnvFile,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	router.Register(e, h, cfg.AdminSecret, rdb, cacheCfg)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

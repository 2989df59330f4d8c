package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-backend/internal/config"
	"marketplace-backend/internal/controllers/http"
	mmysql "marketplace-backend/internal/infra/mysql"
	"marketplace-backend/internal/infra/rabbitmq"
	"marketplace-backend/internal/pricing"
	mysqlrepo "marketplace-backend/internal/repository/mysql"
	"marketplace-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config: load")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	db, err := mmysql.New(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("db: connect")
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbitmq: init publisher")
	}
	defer publisher.Close()

	tx := mysqlrepo.NewTxManager(db)
	users := mysqlrepo.NewUserRepository(db)
	tokens := mysqlrepo.NewTokenRepository(db)
	products := mysqlrepo.NewProductRepository(db)
	promotions := mysqlrepo.NewPromotionRepository(db)
	brands := mysqlrepo.NewBrandRepository(db)
	categories := mysqlrepo.NewCategoryRepository(db)
	stores := mysqlrepo.NewStoreRepository(db)
	carts := mysqlrepo.NewCartRepository(db)
	orders := mysqlrepo.NewOrderRepository(db)
	wishlists := mysqlrepo.NewWishlistRepository(db)
	reviews := mysqlrepo.NewReviewRepository(db)

	pricer := pricing.NewEvaluator(promotions)

	authService := services.NewAuthService(users, tokens, stores, tx)
	authService.SetRedisClient(redisClient)
	catalogService := services.NewCatalogService(products, brands, categories, stores, pricer)
	catalogService.SetRedisClient(redisClient)
	cartService := services.NewCartService(carts, products, pricer)
	orderService := services.NewOrderService(orders, carts, products, users, pricer, publisher, tx)
	wishlistService := services.NewWishlistService(wishlists, products, pricer)
	reviewService := services.NewReviewService(reviews, orders)
	vendorService := services.NewVendorService(stores, products, orders, promotions)

	handler := http.NewHandler(authService, catalogService, cartService, orderService, wishlistService, reviewService, vendorService)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(http.RequestLogger())
	handler.RegisterRoutes(r)

	srv := &nethttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.ServerPort).Msg("starting marketplace backend")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
	log.Info().Msg("server stopped")
}

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shop-order-service/docs"
	"github.com/SergeyBogomolovv/shop-order-service/internal/app"
	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/events"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Order Service API
// @version         1.0
// @description     Оформление, отмена и сопровождение заказов магазина
// @BasePath        /api/v1
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))

	publisher := events.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	orderService := service.NewOrderService(logger, txManager, store, store, store, publisher)
	productService := service.NewProductService(logger, store)
	categoryService := service.NewCategoryService(logger, store)

	responses := cache.NewLRUCache[middleware.CachedResponse](conf.Idempotency.Capacity, conf.Idempotency.TTL)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	orderHandler := handler.NewHTTPHandler(logger, orderService, responses)
	productHandler := handler.NewProductHandler(logger, productService)
	categoryHandler := handler.NewCategoryHandler(logger, categoryService)

	app := app.New(logger, conf, store)

	app.SetHTTPHandlers(orderHandler, productHandler, categoryHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(responses)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

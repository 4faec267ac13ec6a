package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"larekStore/config"
	"larekStore/events"
	"larekStore/handlers"
	"larekStore/repository"
	"larekStore/services"
	"larekStore/views"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	api := repository.NewLarekAPI(cfg.ApiUrl, cfg.CdnUrl, nil)

	source, closeSource := initProductSource(cfg, api)
	defer closeSource()
	sink, closeSink := initOrderSink(ctx, cfg, api)
	defer closeSink()
	basketRepo, closeBasket := initBasketRepo(ctx, cfg)
	defer closeBasket()
	publisher := initPublisher(cfg)
	defer publisher.Close()

	sessionId := uuid.NewString()
	bus := events.NewBus()
	state := services.NewAppState(bus)
	turn := &services.Turn{}
	checkout := services.NewCheckout(bus, state, turn, sink)
	presenter := services.NewPresenter(ctx, bus, state, checkout)
	defer presenter.Close()
	notifier := services.NewOrderNotifier(bus, publisher, sessionId)
	basketService := services.NewBasketService(bus, state, turn, basketRepo, sessionId)
	catalog := services.NewCatalogService(source, state, turn)

	page := views.NewPageView(bus)
	basket := views.NewBasketView(bus, state.Basket)
	delivery := views.NewDeliveryForm(bus)
	contact := views.NewContactForm(bus)
	modal := views.NewModalView(bus, views.ModalContent{Basket: basket, Delivery: delivery, Contact: contact})

	if err := catalog.Load(ctx); err != nil {
		log.Printf("catalog is not available: %v", err)
	}
	restored, err := basketService.Restore()
	if err != nil {
		log.Printf("basket restore: %v", err)
	}
	log.Printf("session %s started, %d basket lines restored", basketService.SessionId(), restored)

	ha := handlers.NewHandler(handlers.HandlerParams{
		Bus:      bus,
		State:    state,
		Turn:     turn,
		Checkout: checkout,
		Catalog:  catalog,
		Page:     page,
		Basket:   basket,
		Delivery: delivery,
		Contact:  contact,
		Modal:    modal,
	})
	router := mux.NewRouter()
	ha.Routes(router)

	srv := &http.Server{Addr: cfg.HttpAddr, Handler: router}
	go func() {
		log.Printf("starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
	basketService.Wait()
	notifier.Wait()
}

func initProductSource(cfg config.Config, api *repository.LarekAPI) (repository.ProductSource, func()) {
	if cfg.CatalogSource != "sql" {
		return api, func() {}
	}
	db, err := sql.Open(cfg.DbDriver, cfg.DSN())
	if err != nil {
		panic(err)
	}
	if err := repository.EnsureProductSchema(context.Background(), db); err != nil {
		panic(err)
	}
	pR, err := repository.NewProductRepository(db)
	if err != nil {
		panic(err)
	}
	log.Printf("db connected (%s)", cfg.DbDriver)
	return pR, func() { db.Close() }
}

func initOrderSink(ctx context.Context, cfg config.Config, api *repository.LarekAPI) (repository.OrderSink, func()) {
	if cfg.OrderSink != "postgres" {
		return api, func() {}
	}
	pool, err := pgxpool.New(ctx, cfg.PgOrdersUrl)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := repository.EnsureOrderSchema(ctx, pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	return repository.NewPostgresOrderRepo(pool), pool.Close
}

func initBasketRepo(ctx context.Context, cfg config.Config) (repository.BasketRepository, func()) {
	addr := cfg.RedisAddr()
	if addr == "" {
		return repository.NewMemoryBasketRepository(), func() {}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	cartR, err := repository.NewBasketRepository(rdb, ctx)
	if err != nil {
		log.Printf("redis is not working, basket kept in memory: %v", err)
		rdb.Close()
		return repository.NewMemoryBasketRepository(), func() {}
	}
	log.Printf("redis connected")
	return cartR, func() { rdb.Close() }
}

func initPublisher(cfg config.Config) repository.OrderEventPublisher {
	switch cfg.EventsBroker {
	case "kafka":
		return repository.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	case "stan":
		pub, err := repository.NewStanPublisher(cfg.StanCluster, cfg.StanClient, cfg.StanUrl, cfg.StanSubject)
		if err != nil {
			log.Printf("stan connect: %v, order events disabled", err)
			return repository.NopPublisher{}
		}
		return pub
	default:
		return repository.NopPublisher{}
	}
}

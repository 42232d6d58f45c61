package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/asadbukhari/bank-ledger-service/internal/config"
	"github.com/asadbukhari/bank-ledger-service/internal/events/kafka"
	"github.com/asadbukhari/bank-ledger-service/internal/interfaces"
	"github.com/asadbukhari/bank-ledger-service/internal/ledger"
	"github.com/asadbukhari/bank-ledger-service/internal/server"
	"github.com/asadbukhari/bank-ledger-service/internal/storage/memory"
	"github.com/asadbukhari/bank-ledger-service/internal/storage/postgres"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	var store interfaces.AccountStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatal("open postgres", zap.Error(err))
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal("ping postgres", zap.Error(err))
		}
		store = postgres.NewAccountStore(db)
	default:
		store = memory.NewAccountStore()
	}

	var pub interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewPublisher(cfg.KafkaBrokers)
		defer p.Close()
		pub = p
	}

	ledgerService := ledger.NewLedger(store, pub, cfg.KafkaTopic, log)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.NewServer(ledgerService, log).Router(),
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("starting server",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("store_backend", cfg.StoreBackend),
		zap.Bool("events_enabled", pub != nil))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", zap.Error(err))
	}
}

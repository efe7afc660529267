package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/escalamed/plantao/backend/internal/config"
	"github.com/escalamed/plantao/backend/internal/events"
	"github.com/escalamed/plantao/backend/internal/handler"
	"github.com/escalamed/plantao/backend/internal/pricing"
	"github.com/escalamed/plantao/backend/internal/roster"
	"github.com/escalamed/plantao/backend/internal/seed"
	"github.com/escalamed/plantao/backend/internal/snapshot"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * criação do logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * carregamento da configuração
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", "error", err)
		return
	}

	/**********************************************
	 * store de snapshot conforme o driver
	 **********************************************/
	var store snapshot.Store

	switch cfg.Snapshot.Driver {
	case "postgres":
		dbpool, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			logger.Error("não foi possível criar o pool de conexões", "error", err)
			return
		}
		defer dbpool.Close()

		dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		// sql.Open só cria o pool, a conexão precisa de um ping explícito
		if err := dbpool.PingContext(ctx); err != nil {
			logger.Error("não foi possível conectar ao banco de dados", "error", err)
			return
		}

		store, err = snapshot.NewPostgresStore(cfg, dbpool)
		if err != nil {
			logger.Error("não foi possível preparar o store de snapshot", "error", err)
			return
		}
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})

		store = snapshot.NewRedisStore(cfg, rdb)
	case "memory":
		logger.Warn("snapshot em memória: as escalas não sobrevivem ao processo")
		store = snapshot.NewMemoryStore()
	default:
		logger.Error("driver de snapshot desconhecido", "driver", cfg.Snapshot.Driver)
		return
	}

	/**********************************************
	 * conexão com o rabbitmq (opcional)
	 **********************************************/
	var publisher *events.Publisher

	if cfg.RabbitMQ.DSN != "" {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("não foi possível conectar ao rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			logger.Error("não foi possível abrir o canal", "error", err)
			return
		}
		defer ch.Close()

		publisher, err = events.NewPublisher(cfg, ch)
		if err != nil {
			logger.Error("não foi possível declarar a fila de eventos", "error", err)
			return
		}
	} else {
		logger.Warn("rabbitmq não configurado, eventos de escala desativados")
	}

	/**********************************************
	 * agregado de escalas e resolvedor de valores
	 **********************************************/
	manager := roster.NewManager(cfg.Organization.ID, seed.Locations(), seed.Schedules(), store)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := manager.Load(ctx); err != nil {
		logger.Error("não foi possível carregar o snapshot das escalas", "error", err)
		return
	}

	resolver := pricing.NewResolver(manager)

	/**********************************************
	 * criação do handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, manager, resolver, publisher)
	if err != nil {
		logger.Error("não foi possível criar o handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("iniciando o servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("não foi possível iniciar o servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("encerrando o servidor...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha ao encerrar o servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor encerrado com sucesso")
}

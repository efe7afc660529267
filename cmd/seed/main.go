package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/escalamed/plantao/backend/internal/config"
	"github.com/escalamed/plantao/backend/internal/roster"
	"github.com/escalamed/plantao/backend/internal/seed"
	"github.com/escalamed/plantao/backend/internal/snapshot"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Grava o dataset de demonstração como snapshot durável, já normalizado, no
// store indicado pela configuração.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", "error", err)
		return
	}

	var store snapshot.Store

	switch cfg.Snapshot.Driver {
	case "postgres":
		dbpool, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			logger.Error("não foi possível criar o pool de conexões", "error", err)
			return
		}
		defer dbpool.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

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
	default:
		logger.Error("o seed exige um store durável (postgres ou redis)", "driver", cfg.Snapshot.Driver)
		return
	}

	// o manager normaliza o seed na construção, gravamos a forma canônica
	manager := roster.NewManager(cfg.Organization.ID, seed.Locations(), seed.Schedules(), store)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := store.Save(ctx, manager.Schedules()); err != nil {
		logger.Error("não foi possível gravar o snapshot de demonstração", "error", err)
		return
	}

	logger.Info("snapshot de demonstração gravado", "name", cfg.Snapshot.Name, "schedules", len(manager.Schedules()))
}

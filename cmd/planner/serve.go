package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	myRedisRepo "github.com/Miraines/StudyPlanner/backend/internal/adapters/db/redis"
	"github.com/Miraines/StudyPlanner/backend/internal/adapters/db/store"
	myHttp "github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http"
	"github.com/Miraines/StudyPlanner/backend/internal/app/auth/hasher"
	"github.com/Miraines/StudyPlanner/backend/internal/app/auth/jwt"
	authsvc "github.com/Miraines/StudyPlanner/backend/internal/app/auth/service"
	studysvc "github.com/Miraines/StudyPlanner/backend/internal/app/study/service"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/repo"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/config"
	lg "github.com/Miraines/StudyPlanner/backend/internal/infra/log"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/server"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	zapLog := lg.Must(cfg.LogLevel)
	defer func() { _ = zapLog.Sync() }()

	if cfg.JWTSecret == "" {
		zapLog.Warn("JWT_SECRET is not set, registration and login will fail until it is")
	}

	gdb, closeDB, err := openAndMigrate(cfg, zapLog)
	if err != nil {
		zapLog.Error("database setup failed", zap.Error(err))
		return err
	}
	defer closeDB()

	var cache repo.ProfileCache
	if cfg.RedisAddress != "" {
		redisCli := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisCli.Close()
		cache = myRedisRepo.NewRedisProfileCache(redisCli, cfg.ProfileCacheTTL)
	}

	passwordHasher, err := hasher.NewFromConfig(cfg)
	if err != nil {
		return errors.Wrap(err, "init password hasher")
	}

	accounts := store.NewAccountRepo(gdb)
	authService := authsvc.New(accounts, passwordHasher, jwt.NewJWTUtil(cfg), validator.New())
	studyService := studysvc.New(accounts, cache, store.NewStudyRepo(gdb), zapLog)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := myHttp.NewRouter(myHttp.NewHandler(authService, studyService, zapLog), cfg, zapLog, registry)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.StartHTTPServer(ctx, cfg.HTTPAddress, router, zapLog)
	})

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
		return err
	}
	return nil
}


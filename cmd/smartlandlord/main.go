package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"smartlandlord/internal/auth"
	"smartlandlord/internal/config"
	"smartlandlord/internal/database"
	httpapi "smartlandlord/internal/http"
	"smartlandlord/internal/logger"
	"smartlandlord/internal/mirror"
	"smartlandlord/internal/repository"
	"smartlandlord/internal/service"
	"smartlandlord/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "smartlandlord")
	if err != nil {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 快照后端：默认 Redis；DB_ENABLED 且连得上时用 Postgres
	var snaps repository.Snapshots = repository.NewRedisSnapshots(store.NewRedisKV(redisClient))
	var db *sql.DB
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			pg := repository.NewPostgresSnapshots(d)
			if err := pg.EnsureSchema(ctx); err != nil {
				log.Warn("snapshot schema init failed, falling back to redis", zap.Error(err))
				_ = d.Close()
			} else {
				db = d
				snaps = pg
				log.Info("DB enabled for smartlandlord snapshots")
			}
		} else {
			log.Warn("DB enabled but connection failed, falling back to redis", zap.Error(err))
		}
	}

	entityStore := repository.NewStore(snaps, log)
	entityStore.SeedFilters(time.Now())
	entityStore.Hydrate(ctx)

	// 远端镜像：未配置时 NopPublisher，数据仅存本地
	var pub mirror.Publisher = mirror.NopPublisher{}
	var outbox *mirror.Outbox
	if cfg.Mirror.Enabled {
		client := mirror.NewClient(cfg.Mirror.BaseURL, cfg.Mirror.Timeout, log)
		outbox = mirror.NewOutbox(client, cfg.Mirror.QueueSize, log)
		outbox.Start()
		pub = outbox

		// 启动时拉一次镜像端租客；非空结果覆盖本地（last-writer-wins）
		if tenants, err := client.FetchTenants(ctx); err != nil {
			log.Warn("mirror tenant fetch failed, keeping local data", zap.Error(err))
		} else if len(tenants) > 0 {
			entityStore.ReplaceTenants(ctx, tenants)
			log.Info("tenants hydrated from mirror", zap.Int("count", len(tenants)))
		}
	}

	tenantSvc := service.NewTenantService(entityStore, pub, log)
	paymentSvc := service.NewPaymentService(entityStore, pub, log)
	ticketSvc := service.NewMaintenanceService(entityStore, pub, log)
	filterSvc := service.NewFilterService(entityStore, pub, log)
	expenseSvc := service.NewExpenseService(entityStore, pub, log)
	meterSvc := service.NewMeterService(entityStore, pub, log)
	contractSvc := service.NewContractService()
	reportSvc := service.NewReportService(entityStore)

	router := httpapi.NewRouter(log)
	router.RegisterRoutes(
		httpapi.NewTenantHandler(tenantSvc, contractSvc, log),
		httpapi.NewPaymentHandler(paymentSvc, contractSvc, log),
		httpapi.NewMaintenanceHandler(ticketSvc, log),
		httpapi.NewFilterHandler(filterSvc, log),
		httpapi.NewExpenseHandler(expenseSvc, log),
		httpapi.NewMeterHandler(meterSvc, log),
		httpapi.NewReportHandler(reportSvc, log),
		httpapi.NewAuthHandler(auth.DefaultWhitelist(), log),
		httpapi.NewExportHandler(tenantSvc, paymentSvc, ticketSvc, filterSvc, expenseSvc, meterSvc, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case err := <-errCh:
		log.Error("server exited", zap.Error(err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if outbox != nil {
		outbox.Close()
	}
	_ = redisClient.Close()
	if db != nil {
		_ = db.Close()
	}
}

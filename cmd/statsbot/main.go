package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/statsbot-lab/guild-stats/internal/command"
	corecfg "github.com/statsbot-lab/guild-stats/internal/core/config"
	"github.com/statsbot-lab/guild-stats/internal/core/storage/postgres"
	"github.com/statsbot-lab/guild-stats/internal/datastore"
	"github.com/statsbot-lab/guild-stats/internal/identity"
	"github.com/statsbot-lab/guild-stats/internal/ingestion"
	"github.com/statsbot-lab/guild-stats/internal/metrics"
	"github.com/statsbot-lab/guild-stats/internal/migrations"
	"github.com/statsbot-lab/guild-stats/internal/platform/discord"
	"github.com/statsbot-lab/guild-stats/internal/server"
	"github.com/statsbot-lab/guild-stats/internal/stats"
)

func main() {
	configPath := flag.String("config", "statsbot.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logLevel := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logLevel.Set(cfg.Logging.SlogLevel())
	slog.Info("Loaded config", "config", cfg)

	m := metrics.New()

	// 2. Initialize Storage (PostgreSQL)
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(db.DB, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		_ = db.Close()
		os.Exit(1)
	}

	dbAdapter, err := postgres.NewAdapter(db, cfg.Database.DeleteBatchSize)
	if err != nil {
		slog.Error("Failed to initialize record store", "error", err)
		_ = db.Close()
		os.Exit(1)
	}
	defer dbAdapter.Close()

	store := metrics.InstrumentStore(dbAdapter, m)

	// 3. Initialize Discord
	client, err := discord.NewClient(cfg.Discord.Token, nil)
	if err != nil {
		slog.Error("Failed to create Discord client", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Identity Resolution
	var shared identity.NameCache
	if cfg.Identity.Redis.Enabled {
		redisCache := identity.NewRedisCache(identity.RedisOptions{
			Addr:      cfg.Identity.Redis.Addr,
			Password:  cfg.Identity.Redis.Password,
			DB:        cfg.Identity.Redis.DB,
			KeyPrefix: cfg.Identity.Redis.KeyPrefix,
		})
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			slog.Warn("Redis name cache unreachable at startup, lookups will fall through", "addr", cfg.Identity.Redis.Addr, "error", err)
		}
		shared = redisCache
	}
	resolver := identity.NewCached(
		identity.NewPlatformResolver(client),
		cfg.Identity.CacheCapacity,
		cfg.Identity.CacheTTL,
		shared,
		m,
	)

	// 5. Initialize Ingestion (backfill queue + live loader)
	backfiller := ingestion.NewBackfiller(client, store, ingestion.BackfillOptions{
		WorkerCount:   cfg.Backfill.WorkerCount,
		PageSize:      cfg.Backfill.PageSize,
		ProgressEvery: cfg.Backfill.ProgressEvery,
	}, m)
	queue := ingestion.NewQueue(backfiller, cfg.Backfill.QueueSize, cfg.Backfill.ConcurrentGuilds)
	scheduler := ingestion.NewScheduler(cfg.Backfill.ScheduleInterval, queue, cfg.Backfill.Guilds)

	live := ingestion.NewLiveLoader(client, store, ingestion.LiveOptions{
		BufferSize:            cfg.Live.BufferSize,
		ResolveReactionCounts: cfg.Live.ResolveReactionCounts,
	}, m)
	removeLive := live.Subscribe(client)
	defer removeLive()

	if cfg.Backfill.OnGuildAvailable {
		removeGuildTrigger := queue.TriggerOnGuildAvailable(client)
		defer removeGuildTrigger()
	}

	// 6. Initialize Stats (query API + chat command)
	statsSvc := stats.NewService(store, resolver, stats.Options{
		TopUsers:          cfg.Stats.TopUsers,
		LookupConcurrency: cfg.Stats.LookupConcurrency,
	}, m)

	var channelStatsCmd *command.ChannelStatsCommand
	if cfg.Command.Enabled {
		channelStatsCmd = command.NewChannelStatsCommand(client, statsSvc, cfg.Live.BufferSize, m)
		removeCmd := channelStatsCmd.Subscribe(client)
		defer removeCmd()
	}

	// 7. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter, m.Handler(), cfg.Server.Mode)
	ingestion.NewService(queue, client).RegisterRoutes(srv.Engine)
	statsSvc.RegisterRoutes(srv.Engine)
	datastore.NewService(store).RegisterRoutes(srv.Engine)

	// 8. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	background := func(run func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run(ctx)
		}()
	}

	background(queue.Run)
	background(live.Run)
	if channelStatsCmd != nil {
		background(channelStatsCmd.Run)
	}
	background(func(ctx context.Context) {
		if err := scheduler.Start(ctx); err != nil {
			slog.Error("Scheduler stopped with error", "error", err)
		}
	})

	// Handlers are registered, the gateway may now deliver events.
	if err := client.Open(); err != nil {
		slog.Error("Failed to open Discord gateway", "error", err)
		cancel()
		wg.Wait()
		os.Exit(1)
	}
	defer client.Close()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		cancel()
	}

	wg.Wait()
	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}

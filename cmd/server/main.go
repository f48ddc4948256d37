package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/cache"
	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/db"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/clubsite/internal/http/pages"
	"github.com/Nixie-Tech-LLC/clubsite/internal/notify"
	"github.com/Nixie-Tech-LLC/clubsite/internal/ui"
	"github.com/Nixie-Tech-LLC/clubsite/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()

	env, err := LoadEnvironment()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}
	setupLogging(env)

	ctx, cancel := gracefulContext(context.Background())
	defer cancel()

	// content payload cache
	payloads := initCache(ctx, env)

	client := content.New(env.ContentAPIURL,
		content.WithTimeout(env.ContentTimeout),
		content.WithCache(payloads, env.ContentCacheTTL),
	)

	// enquiry log
	var store db.Store = db.NewMemoryStore()
	if env.DatabaseURL != "" {
		if err := db.Init(env.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("db init")
		}
		defer db.DB.Close()
		if err := db.RunMigrations(env.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("db migrate")
		}
		store = db.NewStore(db.DB)
	} else {
		log.Warn().Msg("DATABASE_URL not set, enquiries are kept in memory")
	}

	mirror, err := InitStorage(env)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	cfg := pages.Config{
		Content:      client,
		Store:        store,
		Storage:      mirror,
		Cache:        payloads,
		HeroInterval: env.HeroInterval,
		MirrorTTL:    env.BrochureMirrorTTL,
	}

	if env.MQTTBrokerURL != "" {
		mc, err := notify.Connect(env.MQTTBrokerURL, env.MQTTClientID)
		if err != nil {
			log.Error().Err(err).Msg("MQTT unavailable, content updates rely on cache expiry")
		} else {
			n := notify.New(mc, notify.Topics{Content: env.MQTTContentTopic, Enquiry: env.MQTTEnquiryTopic}, payloads)
			if err := n.Subscribe(); err != nil {
				log.Error().Err(err).Msg("failed to subscribe to content updates")
			}
			defer n.Close()
			cfg.Notifier = n
		}
	}

	// site-wide hero rotation
	if env.HeroInterval > 0 {
		cfg.Hero = ui.NewCarousel(0)
		go cfg.Hero.Run(ctx, env.HeroInterval)
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("templates")
	}

	if !env.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	RegisterRoutes(r, env, pages.New(cfg), store, payloads, tmpl)

	srv := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(env Environment) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env.Development() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// initCache prefers Redis and falls back to process memory when it is not
// configured or not reachable.
func initCache(ctx context.Context, env Environment) cache.Cache {
	if env.RedisAddress == "" {
		log.Info().Msg("using in-memory content cache")
		return cache.NewMemory()
	}

	rc := cache.NewRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		log.Error().Err(err).Str("addr", env.RedisAddress).Msg("redis unreachable, using in-memory content cache")
		_ = rc.Close()
		return cache.NewMemory()
	}
	log.Info().Str("addr", env.RedisAddress).Msg("using redis content cache")
	return rc
}

// gracefulContext is cancelled on SIGINT or SIGTERM.
func gracefulContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			log.Info().Msg("received termination signal, starting graceful shutdown")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

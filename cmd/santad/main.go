package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/game"
	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/config"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/email"
	httprouter "github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/http"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/http/handlers"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/http/middleware"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/lock"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/persistence/memory"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/persistence/postgres"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/queue"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	var (
		games        ports.GameRepository
		participants ports.ParticipantRepository
		pool         *pgxpool.Pool
	)
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to database")
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("ping database")
		}
		if err := postgres.Migrate(cfg.Database.URL, log); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
		games = postgres.NewGameRepository(pool)
		participants = postgres.NewParticipantRepository(pool)
	} else {
		log.Warn().Msg("DATABASE_URL not set; using in-memory storage (no durability)")
		store := memory.NewStore()
		games = store.Games()
		participants = store.Participants()
	}

	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewSMTPMailer(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("create smtp mailer")
		}
	} else {
		mailer = email.NewLogMailer(log)
	}

	var redisClient *redis.Client
	var enqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	var asynqOpt asynq.RedisClientOpt
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		asynqOpt = asynq.RedisClientOpt{Addr: opt.Addr, Password: opt.Password, DB: opt.DB}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; dispatching notifications in-process")
			redisClient = nil
		}
	}
	if redisClient != nil {
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		enqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, mailer, participants, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		enqueuer = queue.NewDirectDispatcher(mailer, participants, log)
	}

	locks := lock.NewKeyedMutex()
	createGameUC := game.NewCreateGame(games, cfg.Game.CodeLength)
	addParticipantUC := game.NewAddParticipant(games, participants, locks)
	runAssignmentUC := game.NewRunAssignment(games, participants, locks, enqueuer)
	listParticipantsUC := game.NewListParticipants(games, participants)

	gamesHandler := handlers.NewGamesHandler(createGameUC, addParticipantUC, runAssignmentUC, listParticipantsUC, cfg.Game.JoinBaseURL, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		Games:         gamesHandler,
		HealthHandler: healthHandler,
		Log:           log,
		Secure:        secureMiddleware,
		IPRateLimit:   ipLimit,
		CORS:          middleware.CORS(cfg.Server.CORSAllowedOrigins),
		Metrics:       true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}

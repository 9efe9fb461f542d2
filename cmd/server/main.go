package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/events"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/client/push"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/server/handler"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/tasks"
	"github.com/huhyoujung/footballlog-sub002/internal/app/authorizer"
	"github.com/huhyoujung/footballlog-sub002/internal/app/challenge"
	"github.com/huhyoujung/footballlog-sub002/internal/app/matchevent"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/notification"
	"github.com/huhyoujung/footballlog-sub002/internal/app/pairing"
	"github.com/huhyoujung/footballlog-sub002/internal/app/phaseclock"
	"github.com/huhyoujung/footballlog-sub002/internal/app/referee"
	"github.com/huhyoujung/footballlog-sub002/internal/app/score"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server"
	loggerinternal "github.com/huhyoujung/footballlog-sub002/internal/infra/logger"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

type eventPublisher interface {
	Publish(ctx context.Context, event models.DomainEvent)
}

type dispatcher interface {
	Dispatch(ctx context.Context, notification models.Notification) error
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "Server starts running the server",
		RunE:  startServer,
	}

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	envErr := godotenv.Load()

	cfg := config.Parse[config.Server]()

	logger, logFile, err := loggerinternal.SetupServiceLogger("footballlog-engine", cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if envErr != nil {
		logger.Debug().Err(envErr).Msg(".env file is not loaded")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	formats, err := config.LoadFormats(cfg.App.FormatsFile)
	if err != nil {
		return err
	}

	store, err := openStorage(ctx, cfg, clock, logger)
	if err != nil {
		return err
	}

	var publisher eventPublisher = events.NewLogPublisher(logger)
	if cfg.Nats.Enabled {
		jetStreamPublisher, err := events.NewJetStreamPublisher(ctx, cfg.Nats, logger)
		if err != nil {
			return err
		}

		defer jetStreamPublisher.Close()
		publisher = jetStreamPublisher
	}

	httpClient := http.Client{Timeout: cfg.Push.Timeout}
	pushClient := push.NewPushClient(&httpClient, cfg.Push, logger)
	deliveryService := notification.NewDeliveryService(pushClient, logger)

	var notificationDispatcher dispatcher = deliveryService
	if cfg.GoogleCloud.Enabled() {
		cloudTasksClient, err := cloudtasks.NewClient(ctx)
		if err != nil {
			return fmt.Errorf("failed to create cloud tasks client: %w", err)
		}

		defer cloudTasksClient.Close()
		notificationDispatcher = tasks.NewNotificationDispatcher(cloudTasksClient, cfg.GoogleCloud, clock, logger)
	}

	notifier := notification.NewNotifier(store.roster, notificationDispatcher, logger)
	pairResolver := pairing.NewResolver(store.fixtures, logger)
	scoreService := score.NewScoreService(store.goals, store.fixtures)
	authorizerService := authorizer.NewAuthorizerService(store.fixtures, store.roster, clock)

	challengeService := challenge.NewChallengeService(
		cfg.Challenge,
		store.txManager,
		store.fixtures,
		pairResolver,
		notifier,
		publisher,
		challenge.NewRandomTokenGenerator(),
		clock,
		logger,
	)
	matchEventService := matchevent.NewMatchEventService(
		store.txManager,
		authorizerService,
		store.fixtures,
		store.goals,
		store.cards,
		store.substitutions,
		scoreService,
		publisher,
		clock,
		logger,
	)
	timerService := timer.NewTimerService(
		store.txManager,
		store.fixtures,
		pairResolver,
		publisher,
		formats,
		phaseclock.NewClock(clock),
		logger,
	)
	refereeService := referee.NewRefereeService(store.txManager, store.fixtures, store.referees, notifier, publisher, clock, logger)

	handlers := server.Handlers{
		FixtureHandler:    handler.NewFixtureHandler(challengeService),
		MatchEventHandler: handler.NewMatchEventHandler(matchEventService),
		TimerHandler:      handler.NewTimerHandler(timerService),
		RefereeHandler:    handler.NewRefereeHandler(refereeService),
		TriggerHandler:    handler.NewTriggerHandler(deliveryService),
	}

	h, err := server.NewServer(cfg, handlers, store.roster)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.TriggersTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	logger.Info().Str("port", cfg.App.Port).Str("storage", cfg.App.Storage).Msg("server is listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

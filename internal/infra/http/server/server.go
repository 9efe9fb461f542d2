package server

import (
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/server/handler"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Handlers struct {
	FixtureHandler    *handler.FixtureHandler
	MatchEventHandler *handler.MatchEventHandler
	TimerHandler      *handler.TimerHandler
	RefereeHandler    *handler.RefereeHandler
	TriggerHandler    *handler.TriggerHandler
}

func NewServer(cfg config.Server, handlers Handlers, roster middleware.RosterChecker) (http.Handler, error) {
	r := gin.Default()

	registerRoutes(r, cfg, handlers, roster)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: cfg.App.AllowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r), nil
}

func registerRoutes(r *gin.Engine, cfg config.Server, handlers Handlers, roster middleware.RosterChecker) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	apiKey := v1.Group("").
		Use(middleware.APIKeyAuth(cfg.App.HashedAPIKeys, cfg.App.SecretKey)).
		Use(middleware.Timeout(cfg.App.Timeout)).
		Use(middleware.Identify(roster))

	googleAuth := v1.Group("").
		Use(middleware.ValidateGoogleAuth(cfg.GoogleCloud.TasksBaseURL, cfg.GoogleCloud.ServiceAccountEmail)).
		Use(middleware.Timeout(cfg.App.TriggersTimeout))

	apiKey.GET("/fixtures/:id", handlers.FixtureHandler.Get)
	apiKey.POST("/fixtures/:id/challenge", handlers.FixtureHandler.SendChallenge)
	apiKey.PATCH("/fixtures/:id/status", handlers.FixtureHandler.ChangeStatus)
	apiKey.POST("/challenges/:token/accept", handlers.FixtureHandler.AcceptChallenge)
	apiKey.POST("/challenges/:token/reject", handlers.FixtureHandler.RejectChallenge)

	apiKey.GET("/fixtures/:id/events", handlers.MatchEventHandler.List)
	apiKey.POST("/fixtures/:id/goals", handlers.MatchEventHandler.RecordGoal)
	apiKey.POST("/fixtures/:id/cards", handlers.MatchEventHandler.RecordCard)
	apiKey.POST("/fixtures/:id/substitutions", handlers.MatchEventHandler.RecordSubstitution)
	apiKey.POST("/live/:token/goals", handlers.MatchEventHandler.RecordGoal)
	apiKey.POST("/live/:token/cards", handlers.MatchEventHandler.RecordCard)
	apiKey.POST("/live/:token/substitutions", handlers.MatchEventHandler.RecordSubstitution)
	apiKey.DELETE("/goals/:id", handlers.MatchEventHandler.DeleteGoal)
	apiKey.DELETE("/cards/:id", handlers.MatchEventHandler.DeleteCard)
	apiKey.DELETE("/substitutions/:id", handlers.MatchEventHandler.DeleteSubstitution)

	apiKey.GET("/fixtures/:id/clock", handlers.TimerHandler.Clock)
	apiKey.PUT("/fixtures/:id/timer", handlers.TimerHandler.Configure)
	apiKey.POST("/fixtures/:id/timer/start", handlers.TimerHandler.Start)
	apiKey.POST("/fixtures/:id/timer/pause", handlers.TimerHandler.Pause)
	apiKey.POST("/fixtures/:id/timer/next", handlers.TimerHandler.NextPhase)

	apiKey.POST("/fixtures/:id/referees", handlers.RefereeHandler.Assign)
	apiKey.GET("/referees/:id", handlers.RefereeHandler.Get)
	apiKey.POST("/referees/:id/approve", handlers.RefereeHandler.Approve)

	googleAuth.POST("/triggers/notification", handlers.TriggerHandler.DeliverNotification)
}

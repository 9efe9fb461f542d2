package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Server struct {
	App         App
	PG          PG
	Challenge   Challenge
	GoogleCloud GoogleCloud
	Push        Push
	Nats        Nats
}

type Migrate struct {
	PG PG
}

type App struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	HashedAPIKeys   []string      `env:"HASHED_API_KEYS" envSeparator:","`
	SecretKey       string        `env:"SECRET_KEY,required"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"10s"`
	TriggersTimeout time.Duration `env:"TRIGGERS_TIMEOUT" envDefault:"30s"`
	Storage         string        `env:"STORAGE" envDefault:"postgres"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	FormatsFile     string        `env:"MATCH_FORMATS_FILE" envDefault:"./config/formats.yaml"`
	RosterFile      string        `env:"MEMORY_ROSTER_FILE"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile         string        `env:"LOG_FILE"`
}

type PG struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	Database string `env:"PG_DATABASE" envDefault:"postgres"`
}

type Challenge struct {
	InviteTTL       time.Duration `env:"CHALLENGE_INVITE_TTL" envDefault:"72h"`
	ScoringTokenTTL time.Duration `env:"CHALLENGE_SCORING_TOKEN_TTL" envDefault:"24h"`
}

// GoogleCloud is optional. Without a project id notifications are pushed directly instead of through Cloud Tasks.
type GoogleCloud struct {
	ProjectID           string `env:"GOOGLE_CLOUD_PROJECT_ID"`
	Region              string `env:"GOOGLE_CLOUD_REGION"`
	NotificationQueue   string `env:"GOOGLE_CLOUD_NOTIFICATION_QUEUE" envDefault:"match-notifications"`
	TasksBaseURL        string `env:"GOOGLE_CLOUD_BASE_URL"` // Base URL to be passed as 'audience' param when creating a cloud task. Then cloud tasks will call this URL.
	ServiceAccountEmail string `env:"GOOGLE_CLOUD_SERVICE_ACCOUNT_EMAIL"`
}

func (g GoogleCloud) Enabled() bool {
	return g.ProjectID != ""
}

type Push struct {
	BaseURL string        `env:"PUSH_BASE_URL" envDefault:"http://localhost:3000"`
	APIKey  string        `env:"PUSH_API_KEY"`
	Timeout time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
}

type Nats struct {
	Enabled       bool   `env:"NATS_ENABLED" envDefault:"false"`
	URL           string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	Stream        string `env:"NATS_STREAM" envDefault:"MATCHES"`
	SubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"matches"`
}

func Parse[T any]() T {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return cfg
}

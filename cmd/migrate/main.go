package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/huhyoujung/footballlog-sub002/config"
	loggerinternal "github.com/huhyoujung/footballlog-sub002/internal/infra/logger"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/postgres"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var source string

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "migrate manages the engine tables (fixtures, match events, referee assignments)",
	}
	rootCmd.PersistentFlags().StringVar(&source, "source", "file://./database/migrations", "migrations source url")

	cmdMigrateUp := &cobra.Command{
		Use:   "up",
		Short: "migrate all the way up",
		RunE: func(_ *cobra.Command, _ []string) error {
			return up(source)
		},
	}

	cmdMigrateDown := &cobra.Command{
		Use:   "down",
		Short: "migrate all the way down",
		RunE: func(_ *cobra.Command, _ []string) error {
			return down(source)
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print the applied migration version",
		RunE: func(_ *cobra.Command, _ []string) error {
			return version(source)
		},
	}

	rootCmd.AddCommand(cmdMigrateUp, cmdMigrateDown, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func up(source string) error {
	m, l := run(source)
	defer m.Close()

	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		l.Info().Msg("database is up to date")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to migrate up: %w", err)
	}

	l.Info().Msg("migration up done")

	return nil
}

func down(source string) error {
	m, l := run(source)
	defer m.Close()

	err := m.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		l.Info().Msg("nothing to migrate down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to migrate down: %w", err)
	}

	l.Info().Msg("migration down done")

	return nil
}

func version(source string) error {
	m, l := run(source)
	defer m.Close()

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		l.Info().Msg("no migration is applied")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	l.Info().Uint("version", v).Bool("dirty", dirty).Msg("migration version")

	return nil
}

func run(source string) (*migrate.Migrate, *zerolog.Logger) {
	_ = godotenv.Load()

	cfg := config.Parse[config.Migrate]()

	logger := loggerinternal.SetupLogger()

	db := postgres.EstablishDatabaseConnection(cfg.PG)

	sqlDb, err := db.DB()
	if err != nil {
		panic(err)
	}

	driver, err := migratepg.WithInstance(sqlDb, &migratepg.Config{})
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, cfg.PG.Database, driver)
	if err != nil {
		panic(err)
	}

	return m, logger
}

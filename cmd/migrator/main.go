package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/migrations"
)

var rootCmd = &cobra.Command{
	Use:           "migrator",
	Short:         "Apply trivia catalog schema migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *sql.DB) error {
			if err := goose.UpContext(cmd.Context(), db, "."); err != nil {
				return err
			}
			log.Info().Msg("migrations applied successfully")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *sql.DB) error {
			if err := goose.DownContext(cmd.Context(), db, "."); err != nil {
				return err
			}
			log.Info().Msg("migration rolled back successfully")
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *sql.DB) error {
			return goose.StatusContext(cmd.Context(), db, ".")
		})
	},
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd, statusCmd)
}

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}

// withDB opens the configured database, points goose at the embedded
// migrations and runs fn.
func withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}

	log.Info().
		Str("host", cfg.Postgres.Host).
		Int("port", cfg.Postgres.Port).
		Str("database", cfg.Postgres.Database).
		Msg("connected to database")

	goose.SetBaseFS(migrations.FS)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return fn(db)
}

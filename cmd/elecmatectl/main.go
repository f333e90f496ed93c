// Command elecmatectl is the operator CLI: schema migrations, rating
// maintenance and driving the diary-to-portfolio workflow for a user.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v3"

	"github.com/elecmate/apprentice-backend/internal/adapter/postgres"
	analysisrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/analysis"
	auditrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/audit"
	diaryrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/diary"
	portfoliorepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/portfolio"
	qualificationrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/qualification"
	safetyrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/safety"
	"github.com/elecmate/apprentice-backend/internal/app"
	"github.com/elecmate/apprentice-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cli.Command{
		Name:  "elecmatectl",
		Usage: "Operator tooling for the apprentice backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			alertsCommand(),
			diaryCommand(),
		},
	}

	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env is the per-invocation runtime: config, logger and an open pool.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func openEnv(ctx context.Context, c *cli.Command) (*env, error) {
	cfg, err := config.LoadFrom(c.String("config"))
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &env{cfg: cfg, logger: logger, pool: pool}, nil
}

func (e *env) Close() { e.pool.Close() }

func (e *env) services() *app.Services {
	return app.NewServices(e.logger, e.cfg, app.Repos{
		Diary:         diaryrepo.New(e.pool),
		Portfolio:     portfoliorepo.New(e.pool),
		Analysis:      analysisrepo.New(e.pool),
		Qualification: qualificationrepo.New(e.pool),
		Safety:        safetyrepo.New(e.pool),
		Audit:         auditrepo.New(e.pool),
		Tx:            postgres.NewTxManager(e.pool),
	})
}

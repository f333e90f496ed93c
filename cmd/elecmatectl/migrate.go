package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"

	"github.com/elecmate/apprentice-backend/migrations"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or inspect schema migrations",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withProvider(ctx, c, func(p *goose.Provider) error {
						results, err := p.Up(ctx)
						if err != nil {
							return fmt.Errorf("migrate up: %w", err)
						}
						if len(results) == 0 {
							fmt.Println("schema is up to date")
							return nil
						}
						for _, r := range results {
							fmt.Printf("applied %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
						}
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "List migrations and whether they are applied",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withProvider(ctx, c, func(p *goose.Provider) error {
						statuses, err := p.Status(ctx)
						if err != nil {
							return fmt.Errorf("migrate status: %w", err)
						}
						tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
						fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
						for _, s := range statuses {
							applied := "-"
							if !s.AppliedAt.IsZero() {
								applied = s.AppliedAt.Format("2006-01-02 15:04:05")
							}
							fmt.Fprintf(tw, "%05d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
						}
						return tw.Flush()
					})
				},
			},
		},
	}
}

func withProvider(ctx context.Context, c *cli.Command, fn func(p *goose.Provider) error) error {
	e, err := openEnv(ctx, c)
	if err != nil {
		return err
	}
	defer e.Close()

	db := stdlib.OpenDBFromPool(e.pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(provider)
}

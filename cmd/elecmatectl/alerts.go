package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func alertsCommand() *cli.Command {
	return &cli.Command{
		Name:  "alerts",
		Usage: "Safety alert maintenance",
		Commands: []*cli.Command{
			{
				Name:  "recompute-ratings",
				Usage: "Recompute average_rating for every safety alert from stored ratings",
				Action: func(ctx context.Context, c *cli.Command) error {
					e, err := openEnv(ctx, c)
					if err != nil {
						return err
					}
					defer e.Close()

					n, err := e.services().Safety.RecomputeRatings(ctx)
					if err != nil {
						return err
					}
					e.logger.Info("ratings recomputed", slog.Int64("alerts", n))
					fmt.Printf("recomputed averages for %d alerts\n", n)
					return nil
				},
			},
		},
	}
}

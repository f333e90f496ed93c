package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/internal/service/sheet"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

func diaryCommand() *cli.Command {
	userFlag := &cli.StringFlag{Name: "user", Required: true, Usage: "owner user id"}
	entryFlag := &cli.StringFlag{Name: "entry", Required: true, Usage: "diary entry id"}

	return &cli.Command{
		Name:  "diary",
		Usage: "Act on a user's site diary entries",
		Commands: []*cli.Command{
			{
				Name:  "link",
				Usage: "Turn a diary entry into portfolio evidence",
				Flags: []cli.Flag{
					userFlag,
					entryFlag,
					&cli.BoolFlag{Name: "all-suggested", Usage: "claim every suggested criterion, not just the pre-selected ones"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSheet(ctx, c, func(ctx context.Context, sh *sheet.Sheet) error {
						return runLink(ctx, os.Stdout, sh, c.Bool("all-suggested"))
					})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a diary entry (needs --confirm, like the second tap)",
				Flags: []cli.Flag{
					userFlag,
					entryFlag,
					&cli.BoolFlag{Name: "confirm", Usage: "confirm the deletion"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSheet(ctx, c, func(ctx context.Context, sh *sheet.Sheet) error {
						return runDelete(ctx, os.Stdout, sh, c.Bool("confirm"))
					})
				},
			},
		},
	}
}

// withSheet loads the entry as the given user and opens a sheet on it.
func withSheet(ctx context.Context, c *cli.Command, fn func(ctx context.Context, sh *sheet.Sheet) error) error {
	userID, err := uuid.Parse(c.String("user"))
	if err != nil {
		return fmt.Errorf("--user: %w", err)
	}
	entryID, err := uuid.Parse(c.String("entry"))
	if err != nil {
		return fmt.Errorf("--entry: %w", err)
	}

	e, err := openEnv(ctx, c)
	if err != nil {
		return err
	}
	defer e.Close()

	svc := e.services()
	ctx = ctxutil.WithUserID(ctx, userID)

	entry, err := svc.Diary.GetEntry(ctx, entryID)
	if err != nil {
		return err
	}

	return fn(ctx, sheet.New(entry, svc.Portfolio, svc.Diary.DeleteEntry))
}

// selector is the part of the sheet runLink drives.
type selector interface {
	State() sheet.State
	TapAddToPortfolio(ctx context.Context) error
	Suggestions() []domain.SuggestedAC
	Toggle(i int) error
	Confirm(ctx context.Context) error
	Notice() *domain.Notice
	Entry() *domain.SiteDiaryEntry
}

func runLink(ctx context.Context, out io.Writer, sh selector, allSuggested bool) error {
	if err := sh.TapAddToPortfolio(ctx); err != nil {
		printNotice(out, sh.Notice())
		return err
	}

	if sh.State() == sheet.Picking {
		if allSuggested {
			for i, s := range sh.Suggestions() {
				if !s.Selected {
					if err := sh.Toggle(i); err != nil {
						return err
					}
				}
			}
		}
		for _, s := range sh.Suggestions() {
			mark := " "
			if s.Selected {
				mark = "x"
			}
			fmt.Fprintf(out, "[%s] %s %s\n", mark, s.UnitCode, s.ACText)
		}
		if err := sh.Confirm(ctx); err != nil {
			printNotice(out, sh.Notice())
			return err
		}
	}

	printNotice(out, sh.Notice())
	if id := sh.Entry().LinkedPortfolioID; id != nil {
		fmt.Fprintf(out, "portfolio item: %s\n", id)
	}
	return nil
}

// deleter is the part of the sheet runDelete drives.
type deleter interface {
	TapDelete(ctx context.Context) (bool, error)
}

func runDelete(ctx context.Context, out io.Writer, sh deleter, confirm bool) error {
	if _, err := sh.TapDelete(ctx); err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(out, "delete armed; run again with --confirm to delete the entry")
		return nil
	}

	deleted, err := sh.TapDelete(ctx)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(out, "entry deleted")
	}
	return nil
}

func printNotice(out io.Writer, n *domain.Notice) {
	if n == nil {
		return
	}
	fmt.Fprintf(out, "%s: %s\n", n.Title, n.Description)
}

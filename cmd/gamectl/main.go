// Command gamectl runs moderator chores against the stored game without the bot
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/KirkDiggler/wolfbot/internal/config"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	"github.com/KirkDiggler/wolfbot/internal/logger"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	"github.com/KirkDiggler/wolfbot/internal/services"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
)

// session is what every subcommand needs once storage is open
type session struct {
	service gameService.Service
	seeds   seed.Paths
	close   func()
}

type opener func(ctx context.Context) (*session, error)

func main() {
	_ = godotenv.Load()

	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}
	if err := newApp(os.Stdout, openSession).Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return nil, err
	}

	storage := services.OpenStorage(ctx, cfg, zl)
	provider := services.NewProvider(&services.ProviderConfig{
		GameRepository: storage.Repository,
		Logger:         zl,
	})
	return &session{
		service: provider.GameService,
		seeds:   cfg.SeedPaths(),
		close: func() {
			if err := storage.Close(); err != nil {
				zl.Warn("failed to close storage", zap.Error(err))
			}
			_ = zl.Sync()
		},
	}, nil
}

func newApp(out io.Writer, open opener) *cli.Command {
	with := func(fn func(ctx context.Context, c *cli.Command, s *session) error) cli.ActionFunc {
		return func(ctx context.Context, c *cli.Command) error {
			s, err := open(ctx)
			if err != nil {
				return err
			}
			defer s.close()
			return fn(ctx, c, s)
		}
	}

	return &cli.Command{
		Name:  "gamectl",
		Usage: "Moderator tools for the wolfbot game document",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Build a new game from the configured seed files",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "overwrite", Usage: "replace an existing game"},
				},
				Action: with(func(ctx context.Context, c *cli.Command, s *session) error {
					g, err := s.service.InitializeGame(ctx, &gameService.InitializeGameInput{
						Paths:     s.seeds,
						Overwrite: c.Bool("overwrite"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Initialized game with %d players and %d parties\n", len(g.Players), len(g.Parties))
					return nil
				}),
			},
			{
				Name:  "income",
				Usage: "Run one daily income tick",
				Action: with(func(ctx context.Context, c *cli.Command, s *session) error {
					notices, err := s.service.TriggerDailyIncome(ctx)
					if err != nil {
						return err
					}
					printNotices(out, notices)
					return nil
				}),
			},
			{
				Name:  "report",
				Usage: "Print vote totals",
				Commands: []*cli.Command{
					{
						Name:  "round",
						Usage: "Totals for a round, the latest when number is 0",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "number", Usage: "round number"},
						},
						Action: with(func(ctx context.Context, c *cli.Command, s *session) error {
							report, err := s.service.RoundReport(ctx, int(c.Int("number")))
							if err != nil {
								return err
							}
							fmt.Fprint(out, report.String())
							return nil
						}),
					},
					{
						Name:  "dilemma",
						Usage: "Totals for a dilemma",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true, Usage: "dilemma name"},
						},
						Action: with(func(ctx context.Context, c *cli.Command, s *session) error {
							report, err := s.service.DilemmaReport(ctx, c.String("name"))
							if err != nil {
								return err
							}
							fmt.Fprint(out, report.String())
							return nil
						}),
					},
				},
			},
			{
				Name:  "validate",
				Usage: "Load the stored game and report whether it is valid",
				Action: with(func(ctx context.Context, c *cli.Command, s *session) error {
					g, err := s.service.GetGame(ctx)
					if err != nil {
						return err
					}
					printSummary(out, g)
					return nil
				}),
			},
		},
	}
}

func printNotices(out io.Writer, notices []gamedomain.ResourceNotice) {
	if len(notices) == 0 {
		fmt.Fprintln(out, "No resources changed")
		return
	}
	for _, n := range notices {
		switch n.Kind {
		case gamedomain.NoticeExpired:
			fmt.Fprintf(out, "%s: %d %s expired\n", n.PlayerID, n.Amount, n.Resource)
		case gamedomain.NoticeIncome:
			fmt.Fprintf(out, "%s: received %d %s, now %d\n", n.PlayerID, n.Amount, n.Resource, n.Total)
		}
	}
}

func printSummary(out io.Writer, g *gamedomain.Game) {
	fmt.Fprintf(out, "Game is valid: %d players, %d parties, %d rounds, %d actions, %d items\n",
		len(g.Players), len(g.Parties), len(g.Rounds), len(g.Actions), len(g.Items))

	for _, f := range gamedomain.Flags {
		on, err := g.Flag(f)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "%s: %t\n", f, on)
	}
}

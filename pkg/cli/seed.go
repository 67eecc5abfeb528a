package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/govern-lab/riskframe/pkg/cli/config"
	"github.com/govern-lab/riskframe/pkg/usecase"
	"github.com/govern-lab/riskframe/pkg/utils/logging"
)

func cmdSeed() *cli.Command {
	var force bool
	var repoCfg config.Repository
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Reseed even when the store already holds templates",
			Destination: &force,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the questionnaire template catalog into the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			templates, err := catalogCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load template catalog")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)
			seeded, err := uc.Template.Seed(ctx, templates, force)
			if err != nil {
				return goerr.Wrap(err, "failed to seed templates")
			}

			if seeded == 0 {
				color.New(color.FgYellow).Println("Template catalog already seeded, nothing to do (use --force to reseed)")
				return nil
			}

			color.New(color.FgGreen, color.Bold).Printf("Seeded %d templates\n", seeded)
			for _, tpl := range templates {
				color.New(color.FgCyan).Printf("  %-12s", tpl.FrameworkFunction)
				color.New(color.FgWhite).Printf("%s  ", tpl.SubcategoryID)
				color.New(color.Faint).Printf("(%d questions)\n", len(tpl.Questions))
			}
			return nil
		},
	}
}

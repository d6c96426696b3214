// Command formdemo drives a form session from the terminal.
//
// The script command (the default) reads one event per line from stdin:
//
//	change <field> <value...>
//	blur <field>
//	submit
//	wait
//	show
//	quit
//
// and prints the session snapshot as a JSON line after each one. The fill
// command prompts for every field in turn and validates each answer before
// moving on. Logs go to stderr.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schemas"
	"github.com/dmitrymomot/formkit/pkg/submission"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithEnvironment(cfg.Env, "formdemo"),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = environment.WithContext(ctx, cfg.Env)

	script := func(c *cli.Context) error {
		o, err := openForm(ctx, c, cfg, log)
		if err != nil {
			return err
		}
		return newREPL(o, os.Stdout).Run(ctx, os.Stdin)
	}

	app := cli.NewApp()
	app.Name = "formdemo"
	app.Usage = "validate and submit a form from the terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "form, f", Value: cfg.Form, Usage: "form to open: contact or profile"},
		cli.StringFlag{Name: "lang, l", Value: cfg.Lang, Usage: "message language"},
	}
	app.Commands = []cli.Command{
		{
			Name:      "script",
			ShortName: "s",
			Usage:     "read events from stdin and print JSON snapshots",
			Action:    script,
		},
		{
			Name:  "fill",
			Usage: "fill the form field by field with interactive prompts",
			Action: func(c *cli.Context) error {
				o, err := openForm(ctx, c, cfg, log)
				if err != nil {
					return err
				}
				return fill(ctx, o, os.Stdout)
			},
		},
	}
	app.Action = script

	if err := app.Run(os.Args); err != nil {
		log.ErrorContext(ctx, "formdemo failed", logger.Error(err))
		os.Exit(1)
	}
}

// openForm builds an orchestrator for the form and language chosen by flags.
func openForm(ctx context.Context, c *cli.Context, cfg appConfig, log *slog.Logger) (*submission.Orchestrator, error) {
	schema, err := schemas.ByName(c.GlobalString("form"))
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, schemas.Names())
	}

	catalog, err := validator.LoadCatalog(ctx, i18n.WithLogger(log))
	if err != nil {
		return nil, err
	}
	lang := catalog.Language(c.GlobalString("lang"))
	schema = schema.Localize(catalog, lang)

	log.DebugContext(ctx, "form opened", slog.String("form", c.GlobalString("form")), slog.String("lang", lang))

	return submission.New(schema, submission.SimulatedAction(cfg.Submission.SubmitDelay),
		submission.WithConfig(cfg.Submission),
		submission.WithLogger(log),
		submission.WithListener(func(from, to form.State) {
			log.InfoContext(ctx, "form state", logger.Transition(from.Name(), to.Name()))
		}),
	)
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp()
	app.Name = "expectdemo"
	app.Usage = "walk expected containers through their state transitions"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every payload build and release",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "scenarios",
			Usage:  "run the reference scenarios",
			Action: cmdScenarios,
		},
		{
			Name:   "transitions",
			Usage:  "assign and swap instrumented payloads, optionally injecting failures",
			Action: cmdTransitions,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "fail-clone", Usage: "fail the next payload copy"},
				&cli.BoolFlag{Name: "fail-move", Usage: "fail the next fallible payload move"},
				&cli.BoolFlag{Name: "fail-build", Usage: "fail the next in-place build"},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		zap.L().Fatal("command failed", zap.Error(err))
	}
}

func setup(c *cli.Context) (*zap.Logger, error) {
	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

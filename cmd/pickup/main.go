package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"pickup/core/config"
	"pickup/core/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	cliApp := &cli.App{
		Name:  "pickup",
		Usage: "Find and organise pickup games from the terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Value: cfg.Client.BaseURL, Usage: "API base URL including /api/v1", EnvVars: []string{"CLIENT_BASE_URL"}},
			&cli.StringFlag{Name: "token-file", Value: cfg.Client.TokenFile, Usage: "where the session token is kept"},
		},
		Commands: []*cli.Command{
			signInCommand(),
			signUpCommand(),
			signOutCommand(),
			whoAmICommand(),
			eventsCommand(),
			groupsCommand(),
			profilesCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.Error("command failed", err)
		os.Exit(1)
	}
}

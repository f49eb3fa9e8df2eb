package main

import (
	"flag"
	"fmt"
	"os"

	"todolist/internal/cli"
	"todolist/internal/config"
	"todolist/internal/service"
	"todolist/internal/store/jsonstore"
	"todolist/internal/tui"
	"todolist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to config file")
	theme := flag.String("theme", "", "color theme: classic, neon, mono")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetColorForcing(false, *noColor)
	ui.SetTheme(cfg.Theme)

	backend, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	svc, err := service.New(backend, cfg.StorageKey, cfg.SeedItems())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Without a subcommand, open the interactive list.
	args := flag.Args()
	if len(args) == 0 {
		if err := tui.Run(svc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	os.Exit(cli.Run(svc, args))
}

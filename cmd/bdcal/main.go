// Package main is the entry point for the bdcal CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bdcal/internal/backend/googlecalendar"
	"bdcal/internal/backend/googlesheets"
	"bdcal/internal/cli"
	"bdcal/internal/commands"
	"bdcal/internal/config"
	"bdcal/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create clients factory
	factory := func(ctx context.Context, cfg *config.Config) (*service.Clients, error) {
		sheet, err := googlesheets.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		cal, err := googlecalendar.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &service.Clients{Sheet: sheet, Calendar: cal}, nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

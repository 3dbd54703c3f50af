package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/wikiwally/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the page, random, options and help commands as JSON endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, WIKIWALLY_PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := newApp(serveLogLevel)
	if err != nil {
		return err
	}
	defer a.close()

	port := a.cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{Port: port}, a.service, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

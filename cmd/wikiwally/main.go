// Package main provides the wikiwally command-line interface and HTTP host.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wikiwally",
	Short: "WikiWally Wikipedia lookup bot",
	Long:  "WikiWally looks up Wikipedia articles, random articles and search options, and renders them as chat-ready cards or JSON payloads.",
}

var (
	configFile   string
	requestedBy  string
	jsonOutput   bool
	verbose      bool
	templateFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&requestedBy, "as", defaultRequester(), "Display name shown in the \"Requested by\" footer")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the raw payload as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and boxed output on stderr")
	rootCmd.PersistentFlags().StringVar(&templateFile, "template", "", "Path to a text/template card used for plain-text output")
}

// defaultRequester names the local user, falling back to "cli".
func defaultRequester() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "cli"
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

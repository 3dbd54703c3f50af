package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/wikiwally/internal/config"
	"github.com/jonathan/wikiwally/internal/logging"
	"github.com/jonathan/wikiwally/internal/mediawiki"
	"github.com/jonathan/wikiwally/internal/observability"
	"github.com/jonathan/wikiwally/internal/rendering"
	"github.com/jonathan/wikiwally/internal/schemas"
	"github.com/jonathan/wikiwally/internal/types"
	"github.com/jonathan/wikiwally/internal/wiki"
)

// app bundles what every command needs once flags are parsed.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	service *wiki.Service
}

// loadConfig layers the config file, WIKIWALLY_* variables and flags over
// the defaults, then validates the result.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	// CLI flags win
	if templateFile != "" {
		cfg.Template = templateFile
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Log levels used when --verbose is off.
const (
	commandLogLevel = zapcore.WarnLevel
	serveLogLevel   = zapcore.InfoLevel
)

// newApp builds the logger, MediaWiki client and command service. The logger
// runs at logLevel unless --verbose asks for debug output.
func newApp(logLevel zapcore.Level) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Level(cfg.Verbose, logLevel))
	if err != nil {
		return nil, err
	}

	client, err := mediawiki.New(cfg.ClientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create MediaWiki client: %w", err)
	}

	logger.Debug("Configuration loaded",
		zap.String("api_url", cfg.APIURL),
		zap.Int("batch_concurrency", cfg.BatchConcurrency),
	)

	return &app{
		cfg:     cfg,
		logger:  logger,
		service: wiki.NewService(client, logger, cfg.ResolverConfig()),
	}, nil
}

// close flushes buffered log entries.
func (a *app) close() {
	_ = a.logger.Sync()
}

// emit writes a payload to the command's output, as JSON with --json or as
// a plain-text card otherwise. Verbose mode also boxes the embed on stderr.
func (a *app) emit(cmd *cobra.Command, p *types.Payload) error {
	if err := schemas.ValidatePayload(p); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	embed, err := rendering.BuildEmbed(p)
	if err != nil {
		return err
	}

	if a.cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintEmbed(embed)
		if p.ArticleList != nil {
			printer.PrintSkipped(p.ArticleList.Skipped)
		}
	}

	text, err := rendering.RenderText(embed, a.cfg.Template)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/agent"
	"github.com/spigell/hr-agent/internal/ai/gemini"
	"github.com/spigell/hr-agent/internal/filtering"
	"github.com/spigell/hr-agent/internal/logger"
	"github.com/spigell/hr-agent/internal/outreach"
	"github.com/spigell/hr-agent/internal/secrets"
	"github.com/spigell/hr-agent/internal/store"
)

// session bundles what a command needs; close releases the store.
type session struct {
	agent  *agent.Agent
	logger *zap.Logger
	close  func()
}

// newSession builds the logger, config, store, filters and the optional
// polisher shared by every command.
func newSession(ctx context.Context, command string) *session {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog = logger.WithFields(zlog, logger.CommandFields(command, config.Store.Backend)...)
	zlog.Info("starting the hr-agent", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	zlog.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	st, err := store.Open(store.Config{
		Backend:   config.Store.Backend,
		DataDir:   config.DataDir,
		BadgerDir: config.Store.BadgerDir,
	}, zlog)
	if err != nil {
		zlog.Fatal("opening the store", zap.Error(err))
	}

	filters := prepareFilters(config, zlog)
	for _, status := range filters.Describe() {
		zlog.Debug("filter status",
			zap.String("filter", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	polisher, err := newPolisher(ctx, config.AI, zlog)
	if err != nil {
		zlog.Warn("outreach emails will not be polished", zap.Error(err))
	}

	a := agent.New(agent.Deps{
		Store:    st,
		Filters:  filters,
		Polisher: polisher,
		Logger:   zlog,
		Out:      os.Stdout,
		Backend:  config.Store.Backend,
	})

	return &session{
		agent:  a,
		logger: zlog,
		close: func() {
			if err := st.Close(); err != nil {
				zlog.Warn("closing the store", zap.Error(err))
			}
			_ = zlog.Sync()
		},
	}
}

func prepareFilters(config *Config, logger *zap.Logger) *filtering.Filtering {
	steps := []filtering.Filter{
		filtering.NewExcludedStages(config.Search.ExcludeStages),
		filtering.NewExcludeFile(config.Search.ExcludeFile),
	}

	return filtering.New(steps, logger)
}

// newPolisher returns nil without an error when ai is disabled.
func newPolisher(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*outreach.Polisher, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
		Value: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, logger)
	if err != nil {
		return nil, fmt.Errorf("creating gemini generator: %w", err)
	}

	return outreach.NewPolisher(generator, cfg.Gemini.MaxLogLength, logger), nil
}

// redacted returns a copy of config safe for logging.
func redacted(config *Config) *Config {
	if config == nil || config.AI == nil || config.AI.Gemini == nil || config.AI.Gemini.APIKey == "" {
		return config
	}

	c := *config
	ai := *config.AI
	g := *config.AI.Gemini
	g.APIKey = "<redacted>"
	ai.Gemini = &g
	c.AI = &ai

	return &c
}

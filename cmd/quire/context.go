package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"quire/internal/collection"
	"quire/internal/config"
	"quire/internal/logging"
	"quire/internal/piece"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			OutputPaths: []string{
				"stderr",
				filepath.Join(cfg.Paths.LogDir, "quire.log"),
			},
		})
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

// openCollection binds to the configured collection root with the configured
// default authority format.
func (c *commandContext) openCollection() (*collection.Collection, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	format, err := piece.ParseFormat(cfg.Pieces.DefaultAuthority)
	if err != nil {
		return nil, err
	}
	return collection.Open(cfg.Paths.CollectionRoot, format, c.logger)
}

// applyOverwritePause pushes the configured overwrite safety pause onto a
// freshly opened piece.
func applyOverwritePause(c *commandContext, p *piece.Piece) {
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		p.SetOverwritePause(time.Duration(cfg.Pieces.OverwritePauseSeconds) * time.Second)
	}
}

// withLockedCollection runs fn while holding the collection's single-writer
// lock. Mutating commands go through here.
func (c *commandContext) withLockedCollection(fn func(*collection.Collection) error) error {
	col, err := c.openCollection()
	if err != nil {
		return err
	}
	release, err := col.Lock()
	if err != nil {
		return err
	}
	defer release()
	return fn(col)
}

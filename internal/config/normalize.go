package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePieces()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.CollectionRoot, err = expandPath(c.Paths.CollectionRoot); err != nil {
		return fmt.Errorf("paths.collection_root: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePieces() {
	c.Pieces.DefaultAuthority = strings.ToLower(strings.TrimSpace(c.Pieces.DefaultAuthority))
	if c.Pieces.DefaultAuthority == "" {
		c.Pieces.DefaultAuthority = defaultAuthority
	}
	if c.Pieces.OverwritePauseSeconds < 0 {
		c.Pieces.OverwritePauseSeconds = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "text":
		c.Logging.Format = "text"
	case "json":
	default:
		c.Logging.Format = "text"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

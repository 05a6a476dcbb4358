package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePieces(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.CollectionRoot == "" {
		return errors.New("paths.collection_root must be set")
	}
	return nil
}

func (c *Config) validatePieces() error {
	switch c.Pieces.DefaultAuthority {
	case "mxml", "ly", "midi", "mei":
		return nil
	default:
		return fmt.Errorf("pieces.default_authority: unsupported encoding format %q (expected mxml, ly, midi, or mei)", c.Pieces.DefaultAuthority)
	}
}

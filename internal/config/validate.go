package config

import (
	"errors"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Source == "" {
		return errors.New("scan.source must be set")
	}
	if math.IsNaN(c.Scan.Threshold) {
		return errors.New("scan.threshold must be a number")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.BaseURL == "" {
		return errors.New("tmdb.base_url must be set")
	}
	return nil
}

// Package config reads the environment of the cfst command
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/IceTiki/cfst-builder/internal/gbcode"
	"github.com/IceTiki/cfst-builder/internal/table"
)

// Environment variables
const (
	EnvTableDir       = "CFST_TABLE_DIR"
	EnvSteelThickness = "CFST_STEEL_THICKNESS"
	EnvSamples        = "CFST_SAMPLES"
)

// Config holds the settings shared by all commands
type Config struct {
	TableDir       string  // replacement tables, empty for the embedded ones
	SteelThickness float64 // mm, selects structural steel rows
	Samples        int     // points per tabulated curve
}

// Load reads the given .env files (".env" when none) into the process
// environment and returns the resulting configuration. Missing files are
// ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment
func FromEnv() (Config, error) {
	c := Config{
		TableDir:       os.Getenv(EnvTableDir),
		SteelThickness: gbcode.DefaultSteelThickness,
		Samples:        gbcode.DefaultSamples,
	}
	if v := os.Getenv(EnvSteelThickness); v != "" {
		thk, err := strconv.ParseFloat(v, 64)
		if err != nil || !(thk > 0) {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", EnvSteelThickness, v)
		}
		c.SteelThickness = thk
	}
	if v := os.Getenv(EnvSamples); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			return Config{}, fmt.Errorf("%s must be an integer of at least 2, got %q", EnvSamples, v)
		}
		c.Samples = n
	}
	return c, nil
}

// Store opens the table store selected by the configuration
func (c Config) Store() *table.Store {
	if c.TableDir == "" {
		return table.NewStore(table.Embedded())
	}
	return table.NewStore(table.DirSource{Dir: c.TableDir})
}

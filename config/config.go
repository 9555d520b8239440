package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ModelFormat selects how a satisfying assignment is rendered.
type ModelFormat string

const (
	// ModelDIMACS renders the model as a DIMACS literal line.
	ModelDIMACS ModelFormat = "dimacs"
	// ModelAssignments renders one "var = bool" line per variable.
	ModelAssignments ModelFormat = "assignments"
)

// Config carries everything the solver and its driver need that isn't part
// of the formula itself.
type Config struct {
	Logger      *logrus.Logger
	Verbose     bool
	ModelFormat ModelFormat
}

// New returns a Config with a logger writing to stdout at Info level.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	return &Config{
		Logger:      logger,
		ModelFormat: ModelDIMACS,
	}
}

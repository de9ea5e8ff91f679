// Package config provides process configuration and named package loggers.
package config

// Config contains calculator configuration shared by the run and serve
// commands.
type Config struct {
	// DataDir is the directory holding <material>Data.txt property tables.
	DataDir string

	// LoggingLevel is one of the logrus level names.
	LoggingLevel string

	// Port is the listen port for serve mode.
	Port int64

	// Strict makes unrecognized macro commands fatal instead of skipped.
	Strict bool
}

func getDefaultConfig() *Config {
	return &Config{
		DataDir:      "data",
		LoggingLevel: "info",
		Port:         8090,
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type checkFunc func(conf *Config) error

// Check validates a fully assembled config.
func Check(conf *Config) error {
	checkFuncs := []checkFunc{
		checkPort,
		checkLoggingLevel,
		checkDataDir,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkPort(conf *Config) error {
	if conf.Port < 1 || conf.Port > 65535 {
		return fmt.Errorf("[config] invalid port number %d", conf.Port)
	}
	return nil
}

func checkLoggingLevel(conf *Config) error {
	if _, err := logrus.ParseLevel(strings.ToLower(conf.LoggingLevel)); err != nil {
		return fmt.Errorf("[config] invalid logging level %q", conf.LoggingLevel)
	}
	return nil
}

func checkDataDir(conf *Config) error {
	if conf.DataDir == "" {
		return errors.New("[config] data dir is not defined")
	}
	return nil
}

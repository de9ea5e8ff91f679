package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SetupConfig reads config from the environment over defaults.
// The result is not validated; callers apply their flag overrides and
// then call Check.
func SetupConfig() (*Config, error) {
	conf := getDefaultConfig()

	if dataDir := os.Getenv("CALCATTEN_DATA_DIR"); dataDir != "" {
		conf.DataDir = dataDir
	}

	if level := os.Getenv("CALCATTEN_LOGGING_LEVEL"); level != "" {
		conf.LoggingLevel = strings.ToLower(level)
	}

	if port := os.Getenv("CALCATTEN_PORT"); port != "" {
		portNumber, numberErr := strconv.ParseInt(port, 10, 64)
		if numberErr != nil {
			return nil, fmt.Errorf("[config] port is not a number: %s", numberErr.Error())
		}
		conf.Port = portNumber
	}

	return conf, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

func missingEnvError(key string) error {
	return fmt.Errorf("missing required env var: %s", key)
}

func invalidEnvError(key, value string) error {
	return fmt.Errorf("invalid value for %s: %q", key, value)
}

func requiredString(key string) (string, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return "", missingEnvError(key)
	}
	return variable, nil
}

func stringWithDefault(key, def string) string {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def
	}
	return variable
}

func intWithDefault(key string, def int) (int, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def, nil
	}
	number, err := strconv.Atoi(variable)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %w", key, err)
	}
	return number, nil
}

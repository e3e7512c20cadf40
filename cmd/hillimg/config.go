// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strconv"

	"github.com/katalvlaran/hillimg/key"
)

// defaultKeyFile is where encrypt looks for (or creates) a key when neither
// -key nor HILLIMG_KEY names one.
const defaultKeyFile = "hillimg_key.json"

// Config holds environment-provided defaults; flags override them.
type Config struct {
	KeyPath string // HILLIMG_KEY
	KeySize int    // HILLIMG_KEY_SIZE
}

// loadConfig reads the environment.
func loadConfig() Config {
	return Config{
		KeyPath: getEnv("HILLIMG_KEY", ""),
		KeySize: getEnvInt("HILLIMG_KEY_SIZE", key.DefaultBlockSize),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(name, defaultValue string) string {
	if value, exists := os.LookupEnv(name); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

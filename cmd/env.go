package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables which override the default experiment settings
const (
	EnvAlpha    = "GRIDSARSA_ALPHA"
	EnvGamma    = "GRIDSARSA_GAMMA"
	EnvEpisodes = "GRIDSARSA_EPISODES"
	EnvSteps    = "GRIDSARSA_STEPS"
	EnvOutput   = "GRIDSARSA_OUTPUT"
)

// loadDotEnv loads environment variables from the given .env files, or
// from .env in the working directory if none are given. Variables
// which are already set are not overwritten. A missing default .env
// file is silently ignored, any other failure is logged.
func loadDotEnv(filenames ...string) {
	err := godotenv.Load(filenames...)
	if err == nil {
		return
	}
	if len(filenames) == 0 && errors.Is(err, fs.ErrNotExist) {
		return
	}
	log.Printf("[gridsarsa] .env file could not be loaded: %v", err)
}

// lookupFloat returns the value of the environment variable key as a
// float64 and whether it was set
func lookupFloat(key string) (float64, bool, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, true, fmt.Errorf("lookupFloat: environment variable %v "+
			"must be a number: %v", key, err)
	}
	return value, true, nil
}

// lookupInt returns the value of the environment variable key as an
// int and whether it was set
func lookupInt(key string) (int, bool, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.Atoi(str)
	if err != nil {
		return 0, true, fmt.Errorf("lookupInt: environment variable %v "+
			"must be an integer: %v", key, err)
	}
	return value, true, nil
}

// getEnvWithDefault returns the value of the environment variable key,
// or defaultValue if it is not set
func getEnvWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
)

type Config struct {
	DataDir     string
	Port        string
	SeedOnStart bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match a local single-user setup: CSV files under ./data,
	// seeding enabled so a fresh data directory comes up usable.
	env := Config{
		DataDir:     "data",
		Port:        "9446",
		SeedOnStart: true,
	}

	envDataDir := os.Getenv("DATA_DIR")
	envPort := os.Getenv("PORT")
	envSeedOnStart := os.Getenv("SEED_ON_START")

	if len(envDataDir) != 0 {
		env.DataDir = envDataDir
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSeedOnStart) != 0 {
		if seed, err := strconv.ParseBool(envSeedOnStart); err == nil {
			env.SeedOnStart = seed
		}
	}

	return &env, nil
}

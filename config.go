package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	WorldFile string
	AssetDir  string
	LogLevel  logrus.Level
	ShowMap   bool
}

// LoadConfig reads the environment, after filling it from the given .env
// files. A missing .env file is not an error; every setting has a
// default.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "could not read %s", f)
		}
	}

	cfg := &Config{
		WorldFile: os.Getenv("CAVE_WORLD_FILE"),
		AssetDir:  os.Getenv("CAVE_ASSET_DIR"),
		LogLevel:  logrus.InfoLevel,
	}

	if cfg.AssetDir == "" {
		cfg.AssetDir = "."
	}

	if tmp := os.Getenv("CAVE_LOG_LEVEL"); tmp != "" {
		level, err := logrus.ParseLevel(tmp)
		if err != nil {
			return nil, errors.Wrap(err, "CAVE_LOG_LEVEL")
		}
		cfg.LogLevel = level
	}

	if tmp := os.Getenv("CAVE_SHOW_MAP"); tmp != "" {
		b, err := strconv.ParseBool(tmp)
		if err != nil {
			return nil, errors.Wrap(err, "CAVE_SHOW_MAP is not a truthy value")
		}
		cfg.ShowMap = b
	}

	return cfg, nil
}

// Package config loads driver settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"GAMBIT_LOG_LEVEL" env-default:"info"`
	Play       Play       `yaml:"play"`
	Experiment Experiment `yaml:"experiment"`
}

// Play holds the defaults for an interactive game; CLI flags override
// them.
type Play struct {
	Game       string `yaml:"game" env:"GAMBIT_GAME" env-default:"tictactoe"`
	Depth      int    `yaml:"depth" env:"GAMBIT_DEPTH" env-default:"9"`
	HumanFirst bool   `yaml:"human-first" env:"GAMBIT_HUMAN_FIRST" env-default:"true"`
}

// Experiment configures the agent-vs-agent harness.
type Experiment struct {
	Game      string `yaml:"game" env-default:"tictactoe"`
	Games     int    `yaml:"games" env-default:"20"`
	Depths    []int  `yaml:"depths" env-default:"1,3,5,9"`
	Baseline  int    `yaml:"baseline-depth" env-default:"9"`
	Seed      uint64 `yaml:"seed" env-default:"1"`
	MaxTurns  int    `yaml:"max-turns" env-default:"500"`
	OutputDir string `yaml:"output-dir" env-default:"results"`
}

// Load reads the file at path if it exists; otherwise only defaults and
// environment variables apply.
func Load(path string) (*Config, error) {
	config := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return config, nil
	}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	return config, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/suits/deck"
	"github.com/minaorangina/suits/game"
)

// Config holds settings shared by the cli and the web server.
// Environment variables override the config file.
type Config struct {
	Port           int      `toml:"port" env:"SUITS_PORT"`
	Difficulty     string   `toml:"difficulty" env:"SUITS_DIFFICULTY"`
	FaceValues     string   `toml:"face_values" env:"SUITS_FACE_VALUES"`
	Seed           int64    `toml:"seed" env:"SUITS_SEED"`
	AllowedOrigins []string `toml:"allowed_origins" env:"SUITS_ALLOWED_ORIGINS"`
}

// Default is the configuration used when nothing else is set
func Default() Config {
	return Config{
		Port:       8000,
		Difficulty: game.Easy.String(),
		FaceValues: deck.FlatFaces.String(),
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "suits", "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty, then applies environment overrides. A missing file at the default
// location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("error decoding config file: %v", err)
		}
	} else if explicit || !os.IsNotExist(err) {
		return cfg, fmt.Errorf("error reading config file: %v", err)
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("error reading environment: %v", err)
	}

	return cfg, cfg.Validate()
}

// Write encodes cfg as TOML at path, creating its directory
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	if _, err := deck.ParseFaceValues(c.FaceValues); err != nil {
		return err
	}
	return nil
}

// GameDifficulty is the configured difficulty. Call Validate first.
func (c Config) GameDifficulty() game.Difficulty {
	d, _ := game.ParseDifficulty(c.Difficulty)
	return d
}

// Values is the configured face value mapping. Call Validate first.
func (c Config) Values() deck.FaceValues {
	v, _ := deck.ParseFaceValues(c.FaceValues)
	return v
}

// Addr is the address the web server listens on
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

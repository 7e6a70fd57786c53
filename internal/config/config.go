package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	radar "Radar/internal/calc/radar"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string
	TLSCert       string
	TLSKey        string
	TokenKey      string
	AdminLogin    string
	AdminPassword string
	RateLimit     float64
	RateBurst     int
	RadarPreset   string
}

// Load reads .env files (missing ones are skipped), an optional radar.yaml
// from the working directory or /etc/radar, then the process environment.
// Environment values win over the config file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env: %w", err)
		}
		log.Println("no .env file, using process environment")
	}

	v := viper.New()
	v.SetDefault("ADDR", ":443")
	v.SetDefault("TLS_CERT", "server.crt")
	v.SetDefault("TLS_KEY", "server.key")
	v.SetDefault("ADMIN_LOGIN", "admin")
	v.SetDefault("RATE_LIMIT", 1.0)
	v.SetDefault("RATE_BURST", 3)

	v.SetConfigName("radar")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/radar")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Addr:          v.GetString("ADDR"),
		TLSCert:       v.GetString("TLS_CERT"),
		TLSKey:        v.GetString("TLS_KEY"),
		TokenKey:      v.GetString("TOKEN_KEY"),
		AdminLogin:    v.GetString("ADMIN_LOGIN"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		RateLimit:     v.GetFloat64("RATE_LIMIT"),
		RateBurst:     v.GetInt("RATE_BURST"),
		RadarPreset:   v.GetString("RADAR_PRESET"),
	}
	if cfg.TokenKey == "" {
		return nil, errors.New("TOKEN_KEY environment variable is not set")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD environment variable is not set")
	}
	return cfg, nil
}

// LoadPreset decodes a single radar description from a YAML file.
func LoadPreset(path string) (*radar.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var in radar.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if err := radar.CheckFinite(in, nil); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return &in, nil
}

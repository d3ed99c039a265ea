// Package config loads the telemetry daemon configuration from YAML,
// applies environment overrides and validates the result.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration of the telemetry daemon.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DatabaseConfig locates the bbolt settings database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// MQTTConfig holds the broker connection parameters. Values given
// here seed the settings store on first run.
type MQTTConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	TopicRoot string `yaml:"topic_root"`
}

// TelemetryConfig selects which device attributes are polled and how
// often.
type TelemetryConfig struct {
	IntervalMS int            `yaml:"interval_ms"`
	Devices    []DeviceConfig `yaml:"devices"`
}

// DeviceConfig selects one device by class and driver names,
// optionally pinned to a port address, and names the attributes to
// publish.
type DeviceConfig struct {
	Class      string   `yaml:"class"`
	Drivers    []string `yaml:"drivers"`
	Port       string   `yaml:"port"`
	Attributes []string `yaml:"attributes"`
}

// LoggingConfig controls the daemon log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no file is
// given.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Path: "ev3mqtt.db",
		},
		MQTT: MQTTConfig{
			Host:      "localhost",
			Port:      1883,
			TopicRoot: "ev3",
		},
		Telemetry: TelemetryConfig{
			IntervalMS: 1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, applies
// environment overrides and validates the result. An empty path skips
// the file and uses defaults plus environment only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Environment variables override file values so deployments can keep
// credentials out of the config file.
func (c *Config) applyEnv() error {
	if v := os.Getenv("EV3MQTT_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("EV3MQTT_MQTT_HOST"); v != "" {
		c.MQTT.Host = v
	}
	if v := os.Getenv("EV3MQTT_MQTT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse EV3MQTT_MQTT_PORT: %w", err)
		}
		c.MQTT.Port = port
	}
	if v := os.Getenv("EV3MQTT_MQTT_USERNAME"); v != "" {
		c.MQTT.Username = v
	}
	if v := os.Getenv("EV3MQTT_MQTT_PASSWORD"); v != "" {
		c.MQTT.Password = v
	}
	if v := os.Getenv("EV3MQTT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration for values the daemon cannot run
// with.
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.MQTT.Host == "" {
		return fmt.Errorf("mqtt host cannot be empty")
	}
	if c.MQTT.Port < 1 || c.MQTT.Port > 65535 {
		return fmt.Errorf("invalid mqtt port: %d", c.MQTT.Port)
	}
	if c.Telemetry.IntervalMS <= 0 {
		return fmt.Errorf("telemetry interval must be positive, got %d", c.Telemetry.IntervalMS)
	}
	for i, dev := range c.Telemetry.Devices {
		if dev.Class == "" {
			return fmt.Errorf("device %d: class cannot be empty", i)
		}
		if len(dev.Drivers) == 0 {
			return fmt.Errorf("device %d: drivers cannot be empty", i)
		}
		if len(dev.Attributes) == 0 {
			return fmt.Errorf("device %d: attributes cannot be empty", i)
		}
	}
	return nil
}

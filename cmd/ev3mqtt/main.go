package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	bolt "go.etcd.io/bbolt"

	"ev3dev/ev3dev"
	"ev3dev/ev3dev/motors"
	"ev3dev/ev3dev/sensors"
	"ev3dev/pkg/config"
	"ev3dev/pkg/telemetry"
)

// addressPort lets the config file name ports by their raw address
// token ("in1", "outA") without going through the typed enums.
type addressPort string

func (p addressPort) Address() string { return string(p) }

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	} else if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}

	return cfg, nil
}

func runList(c *cli.Context) error {
	if _, err := loadConfig(c); err != nil {
		return err
	}

	classes := []string{sensors.Class, motors.Class, motors.DcClass}
	for _, class := range classes {
		entries, err := os.ReadDir(filepath.Join(ev3dev.SysClassPath(), class))
		if err != nil {
			log.Debugf("Skipping class %s: %v", class, err)
			continue
		}

		for _, entry := range entries {
			device := ev3dev.NewDriver(class, entry.Name())

			driverName, err := device.DriverName()
			if err != nil {
				return err
			}
			address, err := device.Address()
			if err != nil {
				return err
			}

			fmt.Printf("%s/%s\t%s\t%s\n", class, entry.Name(), driverName, address)
		}
	}
	return nil
}

// buildSources discovers the configured devices and returns one
// source per device attribute.
func buildSources(cfg config.TelemetryConfig) ([]telemetry.Source, error) {
	var sources []telemetry.Source

	for _, dev := range cfg.Devices {
		var instances []string

		if dev.Port != "" {
			instance, err := ev3dev.FindByPortAndDriver(dev.Class, addressPort(dev.Port), dev.Drivers)
			if err != nil {
				return nil, err
			}
			instances = []string{instance}
		} else {
			found, err := ev3dev.FindAllByDriver(dev.Class, dev.Drivers)
			if err != nil {
				return nil, err
			}
			instances = found
		}

		for _, instance := range instances {
			device := ev3dev.NewDriver(dev.Class, instance)
			for _, attr := range dev.Attributes {
				sources = append(sources, telemetry.NewAttributeSource(device, attr))
			}
		}
	}

	return sources, nil
}

func runDaemon(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log.Info("EV3 MQTT telemetry daemon")

	db, err := bolt.Open(cfg.Database.Path, 0600, nil)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}
	defer db.Close()

	store, err := telemetry.NewStore(db, telemetry.Settings{
		Host:      cfg.MQTT.Host,
		Port:      cfg.MQTT.Port,
		Username:  cfg.MQTT.Username,
		Password:  cfg.MQTT.Password,
		TopicRoot: cfg.MQTT.TopicRoot,
	})
	if err != nil {
		return fmt.Errorf("failed to create store: %v", err)
	}

	if c.IsSet("host") || c.IsSet("port") {
		settings, err := store.Settings()
		if err != nil {
			return err
		}
		if c.IsSet("host") {
			settings.Host = c.String("host")
		}
		if c.IsSet("port") {
			settings.Port = c.Int("port")
		}
		if err := store.SetSettings(settings); err != nil {
			return fmt.Errorf("failed to update broker settings: %v", err)
		}
	}

	settings, err := store.Settings()
	if err != nil {
		return fmt.Errorf("failed to read broker settings: %v", err)
	}

	sources, err := buildSources(cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to discover devices: %v", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no devices configured")
	}

	client, err := telemetry.Connect(settings)
	if err != nil {
		return err
	}
	defer client.Disconnect(100)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(cfg.Telemetry.IntervalMS) * time.Millisecond
	publisher := telemetry.NewPublisher(client, settings.TopicRoot, interval, sources, log.StandardLogger())

	if err := publisher.Run(ctx); err != nil {
		return err
	}

	log.Info("Shutting down")
	return nil
}

func main() {
	app := cli.App{
		Name:  "ev3mqtt",
		Usage: "Publish ev3dev device attributes to MQTT",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
				Value:   false,
				EnvVars: []string{"DEBUG"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
				EnvVars: []string{"EV3MQTT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List connected sensors and motors",
				Action: runList,
			},
			{
				Name:   "run",
				Usage:  "Run the telemetry daemon",
				Action: runDaemon,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "host",
						Usage: "Override the stored MQTT broker host",
					},
					&cli.IntFlag{
						Name:  "port",
						Usage: "Override the stored MQTT broker port",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// Package telemetry polls device attributes and publishes their
// readings to an MQTT broker.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ev3dev/ev3dev"
)

// Source is one polled reading: a topic suffix and a sampling
// function. Samples that fail are logged and skipped; the next tick
// retries naturally.
type Source interface {
	Topic() string
	Sample() (any, error)
}

// AttributeSource publishes the current value of a single device
// attribute under <class>/<instance>/<attribute>. It needs nothing
// from the device beyond the ev3dev.Device contract.
type AttributeSource struct {
	device ev3dev.Device
	topic  string
	attr   string
}

// NewAttributeSource returns a source reading the named attribute of
// device on every sample.
func NewAttributeSource(device ev3dev.Driver, attr string) *AttributeSource {
	return &AttributeSource{
		device: device,
		topic:  device.Class() + "/" + device.Instance() + "/" + attr,
		attr:   attr,
	}
}

func (s *AttributeSource) Topic() string {
	return s.topic
}

func (s *AttributeSource) Sample() (any, error) {
	attr, err := s.device.Attribute(s.attr)
	if err != nil {
		return nil, err
	}
	return attr.Value()
}

type reading struct {
	Value any    `json:"value"`
	Time  string `json:"time"`
}

// Connect initializes and connects an MQTT client for the given
// broker settings. The client ID carries a random suffix so several
// bricks can share a broker.
func Connect(settings Settings) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.SetClientID("ev3mqtt-" + uuid.NewString()[:8])
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", settings.Host, settings.Port))
	opts.SetUsername(settings.Username)
	opts.SetPassword(settings.Password)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	return client, nil
}

// Publisher polls a set of sources at a fixed interval and publishes
// their readings as json payloads.
type Publisher struct {
	client   mqtt.Client
	root     string
	interval time.Duration
	sources  []Source
	logger   log.FieldLogger
}

// NewPublisher returns a publisher over the given client and sources.
// Topics are published under root.
func NewPublisher(client mqtt.Client, root string, interval time.Duration, sources []Source, logger log.FieldLogger) *Publisher {
	return &Publisher{
		client:   client,
		root:     root,
		interval: interval,
		sources:  sources,
		logger:   logger.WithField("component", "publisher"),
	}
}

// Run polls and publishes until the context is cancelled.
func (p *Publisher) Run(ctx context.Context) error {
	if !p.client.IsConnected() {
		return fmt.Errorf("MQTT client is not connected")
	}

	p.logger.Infof("Publishing %d sources every %s", len(p.sources), p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.publishOnce()
		}
	}
}

func (p *Publisher) publishOnce() {
	now := time.Now().Format(time.RFC3339)

	for _, source := range p.sources {
		value, err := source.Sample()
		if err != nil {
			p.logger.Errorf("Failed to sample %s: %v", source.Topic(), err)
			continue
		}

		payload, _ := json.Marshal(reading{Value: value, Time: now})
		topic := p.root + "/" + source.Topic()

		if token := p.client.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
			p.logger.Errorf("Failed to publish %s: %v", topic, token.Error())
		}
	}
}

package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev3dev/ev3dev"
)

type doneToken struct{}

func (doneToken) Wait() bool                     { return true }
func (doneToken) WaitTimeout(time.Duration) bool { return true }
func (doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (doneToken) Error() error { return nil }

// fakeClient records published messages; everything else is a no-op.
type fakeClient struct {
	mu        sync.Mutex
	published map[string][]byte
}

func newFakeClient() *fakeClient {
	return &fakeClient{published: make(map[string][]byte)}
}

func (c *fakeClient) IsConnected() bool       { return true }
func (c *fakeClient) IsConnectionOpen() bool  { return true }
func (c *fakeClient) Connect() mqtt.Token     { return doneToken{} }
func (c *fakeClient) Disconnect(quiesce uint) {}

func (c *fakeClient) Unsubscribe(topics ...string) mqtt.Token       { return doneToken{} }
func (c *fakeClient) AddRoute(topic string, cb mqtt.MessageHandler) {}
func (c *fakeClient) OptionsReader() mqtt.ClientOptionsReader       { return mqtt.ClientOptionsReader{} }

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published[topic] = payload.([]byte)
	return doneToken{}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	return doneToken{}
}

func (c *fakeClient) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	return doneToken{}
}

func fakeAttribute(t *testing.T, class, instance, name, value string) ev3dev.Driver {
	t.Helper()

	root := t.TempDir()
	t.Setenv(ev3dev.DriverPathEnv, root)

	dir := filepath.Join(root, class, instance)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0644))

	return ev3dev.NewDriver(class, instance)
}

func TestAttributeSourceTopic(t *testing.T) {
	device := ev3dev.NewDriver("lego-sensor", "sensor0")
	source := NewAttributeSource(device, "value0")

	assert.Equal(t, "lego-sensor/sensor0/value0", source.Topic())
}

func TestAttributeSourceSample(t *testing.T) {
	device := fakeAttribute(t, "lego-sensor", "sensor0", "value0", "42")
	source := NewAttributeSource(device, "value0")

	value, err := source.Sample()
	require.NoError(t, err)
	assert.Equal(t, "42", value)
}

func TestPublisherPublishOnce(t *testing.T) {
	device := fakeAttribute(t, "lego-sensor", "sensor0", "value0", "42")
	source := NewAttributeSource(device, "value0")

	client := newFakeClient()
	publisher := NewPublisher(client, "ev3", time.Second, []Source{source}, log.StandardLogger())

	publisher.publishOnce()

	payload, ok := client.published["ev3/lego-sensor/sensor0/value0"]
	require.True(t, ok)

	var msg reading
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "42", msg.Value)
	assert.NotEmpty(t, msg.Time)
}

func TestPublisherSkipsFailedSamples(t *testing.T) {
	// The attribute does not exist, so sampling fails; the publisher
	// must log and move on rather than publish.
	root := t.TempDir()
	t.Setenv(ev3dev.DriverPathEnv, root)

	device := ev3dev.NewDriver("lego-sensor", "sensor0")
	source := NewAttributeSource(device, "value0")

	client := newFakeClient()
	publisher := NewPublisher(client, "ev3", time.Second, []Source{source}, log.StandardLogger())

	publisher.publishOnce()
	assert.Empty(t, client.published)
}

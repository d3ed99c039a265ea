package telemetry

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const (
	bucket      = "ev3mqtt"
	settingsKey = "mqtt_settings"
)

// Settings holds the broker connection parameters persisted between
// daemon runs.
type Settings struct {
	Host      string
	Port      int
	Username  string
	Password  string
	TopicRoot string
}

// Store persists telemetry settings as a json blob in a bbolt
// database.
type Store struct {
	db *bolt.DB
}

// NewStore creates a store over db and seeds it with defaults when no
// settings were persisted yet.
func NewStore(db *bolt.DB, defaults Settings) (*Store, error) {
	st := Store{db: db}

	if _, err := st.Settings(); err != nil {
		log.Infof("Seeding default broker settings")
		if err := st.SetSettings(defaults); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

// SetSettings saves the broker settings as a json string in the
// database.
func (s *Store) SetSettings(settings Settings) error {
	if settings.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if settings.Port < 1 || settings.Port > 65535 {
		return fmt.Errorf("invalid port: %d", settings.Port)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}

		value, _ := json.Marshal(settings)
		return b.Put([]byte(settingsKey), value)
	})
}

// Settings retrieves the broker settings from the database.
func (s *Store) Settings() (Settings, error) {
	var settings Settings

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucket)
		}

		value := b.Get([]byte(settingsKey))
		if value == nil {
			return fmt.Errorf("key %s not found", settingsKey)
		}

		return json.Unmarshal(value, &settings)
	})

	return settings, err
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"eyetimer/internal/core/model"
)

// SettingsKey is the fixed key the settings record is stored under.
const SettingsKey = "eyeTimerSettings"

// ErrCorruptRecord indicates the stored record is not a JSON object.
var ErrCorruptRecord = errors.New("corrupt settings record")

// KV is a string key/value backend.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store persists settings as a single JSON record.
type Store struct {
	kv  KV
	key string
}

// NewStore creates a store over the backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, key: SettingsKey}
}

// Save writes the settings record, replacing any previous one.
func (store *Store) Save(settings model.Settings) error {
	serialized, err := json.Marshal(newRecord(settings.Clamp()))
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := store.kv.Set(store.key, string(serialized)); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Load overlays the stored record onto current, field by field.
// Missing or malformed fields keep their current value. If nothing is stored
// current is returned unchanged; if the record is not valid JSON, current is
// returned together with an error wrapping ErrCorruptRecord.
func (store *Store) Load(current model.Settings) (model.Settings, error) {
	raw, err := store.kv.Get(store.key)
	if err != nil {
		return current, fmt.Errorf("read settings: %w", err)
	}
	if raw == "" {
		return current, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return current, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return applyRecord(current, fields), nil
}

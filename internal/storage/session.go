package storage

import (
	"sync"

	"eyetimer/internal/core/model"
	"eyetimer/internal/logger"
)

// Session holds the settings in effect and saves every change.
type Session struct {
	mu       sync.Mutex
	store    *Store
	settings model.Settings
}

// NewSession loads the stored settings over defaults. Load errors are
// logged and leave the defaults in place.
func NewSession(store *Store, defaults model.Settings) *Session {
	settings, err := store.Load(defaults.Clamp())
	if err != nil {
		logger.Warn("load settings, using current values", "err", err)
	}
	return &Session{store: store, settings: settings}
}

// Settings returns the settings in effect.
func (session *Session) Settings() model.Settings {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.settings
}

// Update applies change, clamps the result and saves it. The new settings
// stay in effect even if saving fails.
func (session *Session) Update(change func(*model.Settings)) (model.Settings, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	updated := session.settings
	change(&updated)
	session.settings = updated.Clamp()

	if err := session.store.Save(session.settings); err != nil {
		logger.Error("save settings", "err", err)
		return session.settings, err
	}
	return session.settings, nil
}

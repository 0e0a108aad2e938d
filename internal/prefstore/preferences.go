package prefstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

const keyPrefix = "board:"

// Key returns the storage key of a user's board preferences.
func Key(userID string) string {
	return keyPrefix + userID
}

// Preferences loads and saves board preferences per user. Saved values take
// effect in the cache before they are persisted, so a failing store only
// loses them across sessions.
type Preferences struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	mu    sync.Mutex
	cache map[string]domain.BoardPreferences
}

// New creates a Preferences over store.
func New(log *slog.Logger, store Store) *Preferences {
	return &Preferences{
		store: store,
		log:   log.With("component", "prefstore"),
		now:   time.Now,
		cache: make(map[string]domain.BoardPreferences),
	}
}

// Load returns the user's preferences, or the defaults when nothing is saved
// or the stored value cannot be read. Defaults served because the store
// failed are not cached.
func (p *Preferences) Load(ctx context.Context, userID string) domain.BoardPreferences {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.cache[userID]; ok {
		return cached.Clone()
	}

	prefs := domain.DefaultBoardPreferences()
	if strings.TrimSpace(userID) == "" {
		return prefs
	}

	raw, found, err := p.store.Get(ctx, Key(userID))
	switch {
	case err != nil:
		// Not cached: the next Load retries the store.
		p.log.WarnContext(ctx, "load preferences failed, using defaults",
			slog.String("user", userID), slog.String("error", err.Error()))
		return prefs
	case found:
		var stored domain.BoardPreferences
		if err := json.Unmarshal(raw, &stored); err != nil {
			p.log.WarnContext(ctx, "stored preferences unreadable, using defaults",
				slog.String("user", userID), slog.String("error", err.Error()))
		} else {
			prefs = stored
		}
	}

	p.cache[userID] = prefs
	return prefs.Clone()
}

// Save overwrites the user's preferences. The returned error only reports a
// persistence failure; the new value is in effect either way.
func (p *Preferences) Save(ctx context.Context, userID string, prefs domain.BoardPreferences) error {
	if strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("user_id", "required")
	}

	prefs = prefs.Clone()
	prefs.UpdatedAt = p.now().UTC()

	p.mu.Lock()
	p.cache[userID] = prefs
	p.mu.Unlock()

	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := p.store.Put(ctx, Key(userID), raw); err != nil {
		p.log.WarnContext(ctx, "persist preferences failed",
			slog.String("user", userID), slog.String("error", err.Error()))
		return fmt.Errorf("persist preferences: %w", err)
	}
	return nil
}

// Reset drops the user's preferences back to the defaults.
func (p *Preferences) Reset(ctx context.Context, userID string) error {
	p.mu.Lock()
	p.cache[userID] = domain.DefaultBoardPreferences()
	p.mu.Unlock()

	if err := p.store.Delete(ctx, Key(userID)); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}

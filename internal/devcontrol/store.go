package devcontrol

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"susanalopezstudio/internal/kvstore"
)

// Source tags where the active config tree came from.
type Source string

const (
	SourcePreset    Source = "preset"
	SourceMagicLink Source = "magic_link"
	SourceStored    Source = "stored"
	SourceDefaults  Source = "defaults"
)

// Store holds the active config tree. One instance per application; every
// mutation is persisted immediately, last writer wins.
type Store struct {
	mu  sync.RWMutex
	kv  kvstore.Store
	log zerolog.Logger
	cfg Config
}

func NewStore(kv kvstore.Store, log zerolog.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log.With().Str("component", "devcontrol").Logger(),
		cfg: Defaults(),
	}
}

// Resolve picks the startup tree. Priority, highest first: named preset in
// the query, base64 tree in the query, persisted tree, defaults. A malformed
// query payload falls through to the persisted tree; a malformed persisted
// tree is cleared and falls through to defaults. Never fails.
func (s *Store) Resolve(ctx context.Context, query url.Values) Source {
	if name := query.Get(ParamPreset); name != "" {
		if patch, ok := Preset(name); ok {
			s.replace(ctx, Defaults().Apply(patch), true)
			s.log.Info().Str("preset", name).Msg("config resolved from preset link")
			return SourcePreset
		}
		s.log.Warn().Str("preset", name).Msg("unknown preset name ignored")
	}

	if raw := query.Get(ParamMagicLink); raw != "" {
		patch, err := Decode(raw)
		if err != nil {
			s.log.Warn().Err(err).Msg("malformed magic link ignored")
		} else {
			s.replace(ctx, Defaults().Apply(patch), true)
			s.log.Info().Msg("config resolved from magic link")
			return SourceMagicLink
		}
	}

	if data, ok, err := s.kv.Get(ctx, kvstore.KeyConfig); err != nil {
		s.log.Error().Err(err).Msg("reading persisted config")
	} else if ok {
		var patch Patch
		if err := json.Unmarshal(data, &patch); err != nil {
			s.log.Warn().Err(err).Msg("clearing malformed persisted config")
			if err := s.kv.Delete(ctx, kvstore.KeyConfig); err != nil {
				s.log.Error().Err(err).Msg("deleting malformed persisted config")
			}
		} else {
			s.replace(ctx, Defaults().Apply(patch), false)
			return SourceStored
		}
	}

	s.replace(ctx, Defaults(), false)
	return SourceDefaults
}

// Config returns the current tree. Every schema key is always populated.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// System is a shortcut for the section the gating middleware reads on every
// request.
func (s *Store) System() SystemConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.System
}

// Section returns a single named section of the current tree.
func (s *Store) Section(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Section(name)
}

// Update merges a partial tree onto the current config and persists the
// result. Sibling keys of untouched leaves keep their values, including
// inside nested admin groups.
func (s *Store) Update(ctx context.Context, p Patch) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = s.cfg.Apply(p)
	return s.cfg, s.persistLocked(ctx)
}

// ResetToDefaults replaces the tree with the schema defaults and persists.
// Idempotent.
func (s *Store) ResetToDefaults(ctx context.Context) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = Defaults()
	return s.cfg, s.persistLocked(ctx)
}

// ClearAndReset removes the persisted tree and resets the in-memory one.
// Any page reload is the caller's concern.
func (s *Store) ClearAndReset(ctx context.Context) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = Defaults()
	return s.cfg, s.kv.Delete(ctx, kvstore.KeyConfig)
}

func (s *Store) replace(ctx context.Context, cfg Config, persist bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	if persist {
		if err := s.persistLocked(ctx); err != nil {
			s.log.Error().Err(err).Msg("persisting resolved config")
		}
	}
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.cfg)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.KeyConfig, data)
}

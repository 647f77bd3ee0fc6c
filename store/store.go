// Package store materializes named dynamic objects from JSON and plist
// documents on disk and routes mutations through the typed accessor layer.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"howett.net/plist"

	"github.com/benrod3k/hostobj/callback"
	"github.com/benrod3k/hostobj/object"
	"github.com/benrod3k/hostobj/utils"
)

// parsed documents kept in memory; older ones are re-read on demand
const cacheSize = 32

// Store serves dynamic objects backed by document files in a single
// directory. Objects handed out by Object are shared; MapObject makes single
// calls safe on its own, and the store's mutex keeps multi-call sequences
// (batch writes, save snapshots) atomic and orders watcher notification.
type Store struct {
	mu       sync.Mutex
	dir      string
	cache    *lru.Cache[string, *object.MapObject]
	registry *callback.Registry
	watchers map[string][]callback.ID
}

// Open opens a store over an existing directory.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: %s is not a directory", dir)
	}

	cache, err := lru.New[string, *object.MapObject](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Store{
		dir:      dir,
		cache:    cache,
		registry: callback.NewRegistry(),
		watchers: make(map[string][]callback.ID),
	}, nil
}

// List returns the document names in the store directory, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".json" && ext != ".plist" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Object returns the named document as a dynamic object, parsing it on first
// use. The returned object is shared with the store.
func (s *Store) Object(name string) (*object.MapObject, error) {
	if strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("store: invalid object name %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if obj, ok := s.cache.Get(name); ok {
		return obj, nil
	}

	obj, err := s.load(name)
	if err != nil {
		return nil, err
	}
	s.cache.Add(name, obj)
	return obj, nil
}

func (s *Store) load(name string) (*object.MapObject, error) {
	jsonPath := filepath.Join(s.dir, name+".json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", jsonPath, err)
		}
		return object.FromDocument(doc), nil
	}

	plistPath := filepath.Join(s.dir, name+".plist")
	if data, err := os.ReadFile(plistPath); err == nil {
		var doc map[string]interface{}
		if _, err := plist.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", plistPath, err)
		}
		return object.FromDocument(doc), nil
	}

	return nil, fmt.Errorf("store: object not found: %s", name)
}

// Save writes the named object back to disk as JSON, regardless of the format
// it was loaded from.
func (s *Store) Save(name string) error {
	obj, err := s.Object(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	doc, err := object.Dump(obj)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("store: dump %s: %w", name, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}

// Apply writes one property through the accessor and fires any one-shot
// watchers on the object.
func (s *Store) Apply(name, prop string, value object.Value) (bool, error) {
	obj, err := s.Object(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	wasNew, err := object.Set(obj, prop, value)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	s.notify(name, prop)
	return wasNew, nil
}

// ApplyAll writes multiple properties in order, with the accessor's
// no-rollback semantics: on failure earlier writes remain applied and no
// watchers fire.
func (s *Store) ApplyAll(name string, props []object.Property) error {
	obj, err := s.Object(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	err = object.SetProperties(obj, props)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(name, "")
	return nil
}

// Remove deletes one property. Watchers fire only when a property actually
// existed.
func (s *Store) Remove(name, prop string) (bool, error) {
	obj, err := s.Object(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	removed, err := object.Delete(obj, prop)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	if removed {
		s.notify(name, prop)
	}
	return removed, nil
}

// WatchOnce registers a one-shot callback fired on the next mutation of the
// named object. The callback receives (name, prop, id); prop is empty for
// batch writes. The id argument lets a callback refer to its own
// registration, which may fire before the caller sees the returned id.
func (s *Store) WatchOnce(name string, fn callback.Func) callback.ID {
	id := s.registry.Register(fn)
	s.mu.Lock()
	s.watchers[name] = append(s.watchers[name], id)
	s.mu.Unlock()
	return id
}

// Unwatch discards a watch registration without firing it.
func (s *Store) Unwatch(id callback.ID) bool {
	s.mu.Lock()
	for name, ids := range s.watchers {
		for i, wid := range ids {
			if wid != id {
				continue
			}
			ids = append(ids[:i], ids[i+1:]...)
			if len(ids) == 0 {
				delete(s.watchers, name)
			} else {
				s.watchers[name] = ids
			}
			break
		}
	}
	s.mu.Unlock()

	return s.registry.Remove(id)
}

func (s *Store) notify(name, prop string) {
	s.mu.Lock()
	ids := s.watchers[name]
	delete(s.watchers, name)
	s.mu.Unlock()

	for _, id := range ids {
		if _, err := s.registry.InvokeAndRemove(id, name, prop, id); err != nil {
			utils.Verbose("watcher %s for %q: %v", id, name, err)
		}
	}
}

package options

import (
	"github.com/benrod3k/hostobj/callback"
	"github.com/benrod3k/hostobj/object"
)

// ShortcutInfo is the result of building a shortcut: the options object the
// host consumes plus the ids of the callbacks registered for it.
type ShortcutInfo struct {
	Options  object.Object
	ActiveID callback.ID
	FailedID callback.ID
}

// Shortcut builds a global keyboard shortcut options object. Callbacks are
// registered in the given registry and referenced from the options object by
// id; the registry is passed in explicitly, there is no ambient application
// lookup.
type Shortcut struct {
	b        *Builder
	registry *callback.Registry
	activeID callback.ID
	failedID callback.ID
}

func NewShortcut(registry *callback.Registry) *Shortcut {
	return &Shortcut{b: New(), registry: registry}
}

// Key sets the shortcut key, e.g. "Ctrl+Shift+Q": zero or more modifiers
// (Ctrl, Alt, Shift, Command) plus exactly one key code, case insensitive.
func (s *Shortcut) Key(key string) *Shortcut {
	s.b.Set("key", object.String(key))
	return s
}

// Active sets the callback invoked when the shortcut fires. Re-setting it
// discards the previous registration.
func (s *Shortcut) Active(fn callback.Func) *Shortcut {
	if s.activeID != "" {
		s.registry.Remove(s.activeID)
	}
	s.activeID = s.registry.Register(fn)
	s.b.Set("active", object.Handle(s.activeID))
	return s
}

// Failed sets the callback invoked when the host rejects or fails to register
// the key.
func (s *Shortcut) Failed(fn callback.Func) *Shortcut {
	if s.failedID != "" {
		s.registry.Remove(s.failedID)
	}
	s.failedID = s.registry.Register(fn)
	s.b.Set("failed", object.Handle(s.failedID))
	return s
}

// Build returns the shortcut options. The key is required.
func (s *Shortcut) Build() (*ShortcutInfo, error) {
	obj, err := s.b.Build()
	if err != nil {
		return nil, err
	}
	if _, err := object.GetString(obj, "key"); err != nil {
		return nil, err
	}
	return &ShortcutInfo{
		Options:  obj,
		ActiveID: s.activeID,
		FailedID: s.failedID,
	}, nil
}

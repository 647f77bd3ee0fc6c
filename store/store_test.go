package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benrod3k/hostobj/callback"
	"github.com/benrod3k/hostobj/object"
)

const windowJSON = `{
  "title": "main",
  "width": 1024,
  "visible": true,
  "position": {"x": 10, "y": 20}
}`

const settingsPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>theme</key>
	<string>dark</string>
	<key>fontSize</key>
	<integer>14</integer>
	<key>autosave</key>
	<true/>
</dict>
</plist>`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "window.json"), []byte(windowJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.plist"), []byte(settingsPlist), 0o600))

	s, err := Open(dir)
	require.NoError(t, err)
	return s
}

func TestOpenRequiresDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	_, err = Open(file)
	assert.ErrorContains(t, err, "not a directory")
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"settings", "window"}, names)
}

func TestObjectFromJSON(t *testing.T) {
	s := newTestStore(t)
	obj, err := s.Object("window")
	require.NoError(t, err)

	title, err := object.GetString(obj, "title")
	require.NoError(t, err)
	assert.Equal(t, "main", title)

	width, err := object.GetUint32(obj, "width")
	require.NoError(t, err)
	assert.Equal(t, uint32(1024), width)

	pos, err := object.GetObject(obj, "position")
	require.NoError(t, err)
	x, err := object.GetFloat64(pos, "x")
	require.NoError(t, err)
	assert.Equal(t, 10.0, x)
}

func TestObjectFromPlist(t *testing.T) {
	s := newTestStore(t)
	obj, err := s.Object("settings")
	require.NoError(t, err)

	theme, err := object.GetString(obj, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	size, err := object.GetUint8(obj, "fontSize")
	require.NoError(t, err)
	assert.Equal(t, uint8(14), size)

	autosave, err := object.GetBool(obj, "autosave")
	require.NoError(t, err)
	assert.True(t, autosave)
}

func TestObjectIsCached(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Object("window")
	require.NoError(t, err)
	b, err := s.Object("window")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestObjectNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Object("ghost")
	assert.ErrorContains(t, err, "object not found")
}

func TestObjectRejectsPathSeparators(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Object("../window")
	assert.ErrorContains(t, err, "invalid object name")
}

func TestApplyAndSave(t *testing.T) {
	s := newTestStore(t)

	wasNew, err := s.Apply("window", "height", object.Int(768))
	require.NoError(t, err)
	assert.True(t, wasNew)

	wasNew, err = s.Apply("window", "title", object.String("renamed"))
	require.NoError(t, err)
	assert.False(t, wasNew)

	require.NoError(t, s.Save("window"))

	data, err := os.ReadFile(filepath.Join(s.dir, "window.json"))
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 768.0, doc["height"])
	assert.Equal(t, "renamed", doc["title"])
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	removed, err := s.Remove("window", "visible")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove("window", "visible")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWatchOnceFiresOnNextWriteOnly(t *testing.T) {
	s := newTestStore(t)

	var fired []string
	s.WatchOnce("window", func(args ...interface{}) (interface{}, error) {
		fired = append(fired, args[1].(string))
		return nil, nil
	})

	_, err := s.Apply("window", "width", object.Int(800))
	require.NoError(t, err)
	_, err = s.Apply("window", "width", object.Int(900))
	require.NoError(t, err)

	assert.Equal(t, []string{"width"}, fired)
}

func TestWatchOnceBatchWrite(t *testing.T) {
	s := newTestStore(t)

	var prop string
	fired := false
	s.WatchOnce("window", func(args ...interface{}) (interface{}, error) {
		fired = true
		prop = args[1].(string)
		return nil, nil
	})

	err := s.ApplyAll("window", []object.Property{
		{Name: "a", Value: object.Int(1)},
		{Name: "b", Value: object.Int(2)},
	})
	require.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, "", prop)
}

func TestWatchOnceCallbackReceivesOwnID(t *testing.T) {
	s := newTestStore(t)

	var got callback.ID
	id := s.WatchOnce("window", func(args ...interface{}) (interface{}, error) {
		got = args[2].(callback.ID)
		return nil, nil
	})

	_, err := s.Apply("window", "width", object.Int(800))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestUnwatch(t *testing.T) {
	s := newTestStore(t)

	id := s.WatchOnce("window", func(args ...interface{}) (interface{}, error) {
		t.Fatal("unwatched callback must not fire")
		return nil, nil
	})
	assert.True(t, s.Unwatch(id))

	// the registration is gone from the watcher list too, not just the registry
	s.mu.Lock()
	_, still := s.watchers["window"]
	s.mu.Unlock()
	assert.False(t, still)

	_, err := s.Apply("window", "width", object.Int(640))
	require.NoError(t, err)
}

func TestWatchRemoveDoesNotFireForAbsentProperty(t *testing.T) {
	s := newTestStore(t)

	fired := false
	s.WatchOnce("window", func(args ...interface{}) (interface{}, error) {
		fired = true
		return nil, nil
	})

	_, err := s.Remove("window", "no-such-prop")
	require.NoError(t, err)
	assert.False(t, fired)

	_, err = s.Remove("window", "title")
	require.NoError(t, err)
	assert.True(t, fired)
}

// Package options builds host option objects through the typed accessor
// layer. Paths may be dotted ("mandatory.maxWidth"); intermediate objects are
// created as needed.
package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benrod3k/hostobj/object"
)

// Builder accumulates writes into an options object. The first failed write
// sticks and surfaces from Build; later calls become no-ops.
type Builder struct {
	obj object.Object
	err error
}

// New starts a builder over a fresh map-backed object.
func New() *Builder {
	return Wrap(object.NewMapObject())
}

// Wrap starts a builder over an existing host object.
func Wrap(o object.Object) *Builder {
	return &Builder{obj: o}
}

// Set writes a value at a dotted path. Missing intermediate objects are
// created; an intermediate slot holding a non-object value is replaced with a
// fresh object.
func (b *Builder) Set(path string, value object.Value) *Builder {
	if b.err != nil {
		return b
	}

	target := b.obj
	segments := strings.Split(path, ".")
	for _, seg := range segments[:len(segments)-1] {
		child, ok, err := object.TryGetObject(target, seg)
		if err != nil {
			var mismatch *object.TypeMismatchError
			if !errors.As(err, &mismatch) {
				b.err = fmt.Errorf("options: read %q in %q: %w", seg, path, err)
				return b
			}
			ok = false
		}
		if !ok {
			next := object.NewMapObject()
			if _, err := object.Set(target, seg, object.ObjectValue(next)); err != nil {
				b.err = fmt.Errorf("options: create %q in %q: %w", seg, path, err)
				return b
			}
			target = next
			continue
		}
		target = child
	}

	if _, err := object.Set(target, segments[len(segments)-1], value); err != nil {
		b.err = fmt.Errorf("options: set %q: %w", path, err)
	}
	return b
}

// Err reports the first write failure, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the options object, or the first write failure.
func (b *Builder) Build() (object.Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.obj, nil
}

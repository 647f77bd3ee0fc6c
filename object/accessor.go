// Package object provides typed property access over host-managed dynamic
// objects. Every accessor takes the target object explicitly, resolves in a
// single host read or write, and reports failures through the
// MissingPropertyError / TypeMismatchError / CoercionError taxonomy. A failed
// read never mutates the object.
package object

import (
	"encoding/hex"
	"fmt"
	"math"
)

// Coercible is the set of target types the generic accessors can produce.
// Nested objects go through GetObject, which has its own error rule.
type Coercible interface {
	bool | float64 | string | uint8 | uint16 | uint32 | uint64 | []byte | []Value
}

// Get reads prop and coerces it to T. An absent slot (or one holding
// undefined) fails with MissingPropertyError.
func Get[T Coercible](o Object, prop string) (T, error) {
	var zero T
	v, err := o.Get(prop)
	if err != nil {
		return zero, err
	}
	if v.IsUndefined() {
		return zero, &MissingPropertyError{Prop: prop}
	}
	out, err := coerce[T](prop, v)
	if err != nil {
		return zero, err
	}
	return out, nil
}

// TryGet is Get except an absent slot yields (zero, false, nil) instead of
// failing. A present null is not absent: it goes through coercion and fails
// like any other wrong-kind value.
func TryGet[T Coercible](o Object, prop string) (T, bool, error) {
	var zero T
	v, err := o.Get(prop)
	if err != nil {
		return zero, false, err
	}
	if v.IsUndefined() {
		return zero, false, nil
	}
	out, err := coerce[T](prop, v)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

// GetValue reads the raw value at prop, undefined included.
func GetValue(o Object, prop string) (Value, error) {
	return o.Get(prop)
}

// TryGetValue reads the raw value at prop; an absent slot yields ok=false.
func TryGetValue(o Object, prop string) (Value, bool, error) {
	v, err := o.Get(prop)
	if err != nil {
		return Undefined(), false, err
	}
	if v.IsUndefined() {
		return Undefined(), false, nil
	}
	return v, true, nil
}

// GetObject reads a nested object. An absent slot fails with
// MissingPropertyError; a present value of any other kind fails with
// TypeMismatchError.
func GetObject(o Object, prop string) (Object, error) {
	v, err := o.Get(prop)
	if err != nil {
		return nil, err
	}
	if v.IsUndefined() {
		return nil, &MissingPropertyError{Prop: prop}
	}
	if v.kind != KindObject {
		return nil, &TypeMismatchError{Prop: prop, Expected: KindObject, Actual: v.kind}
	}
	return v.obj, nil
}

// TryGetObject is GetObject except an absent slot yields (nil, false, nil).
func TryGetObject(o Object, prop string) (Object, bool, error) {
	v, err := o.Get(prop)
	if err != nil {
		return nil, false, err
	}
	if v.IsUndefined() {
		return nil, false, nil
	}
	if v.kind != KindObject {
		return nil, false, &TypeMismatchError{Prop: prop, Expected: KindObject, Actual: v.kind}
	}
	return v.obj, true, nil
}

// GetString requires the value be exactly a string; numbers and booleans are
// not stringified.
func GetString(o Object, prop string) (string, error) {
	return Get[string](o, prop)
}

func TryGetString(o Object, prop string) (string, bool, error) {
	return TryGet[string](o, prop)
}

// GetBool requires the value be exactly a boolean.
func GetBool(o Object, prop string) (bool, error) {
	return Get[bool](o, prop)
}

func TryGetBool(o Object, prop string) (bool, bool, error) {
	return TryGet[bool](o, prop)
}

// Numeric getters require a number-kind value and convert it to the target
// width by truncating toward zero and saturating at the target's bounds.
// A non-numeric value fails with CoercionError.

func GetUint8(o Object, prop string) (uint8, error) {
	return Get[uint8](o, prop)
}

func GetUint16(o Object, prop string) (uint16, error) {
	return Get[uint16](o, prop)
}

func GetUint32(o Object, prop string) (uint32, error) {
	return Get[uint32](o, prop)
}

func GetUint64(o Object, prop string) (uint64, error) {
	return Get[uint64](o, prop)
}

func GetFloat64(o Object, prop string) (float64, error) {
	return Get[float64](o, prop)
}

// GetArray reads an array-kind value.
func GetArray(o Object, prop string) ([]Value, error) {
	return Get[[]Value](o, prop)
}

// GetBytes reads a byte sequence from either a hex-encoded string or an array
// of numbers, normalizing both representations.
func GetBytes(o Object, prop string) ([]byte, error) {
	return Get[[]byte](o, prop)
}

// GetBytesFromNumberArray reads a byte sequence strictly from an array of
// numbers; a hex string is rejected.
func GetBytesFromNumberArray(o Object, prop string) ([]byte, error) {
	v, err := o.Get(prop)
	if err != nil {
		return nil, err
	}
	if v.IsUndefined() {
		return nil, &MissingPropertyError{Prop: prop}
	}
	if v.kind != KindArray {
		return nil, &TypeMismatchError{Prop: prop, Expected: KindArray, Actual: v.kind}
	}
	return bytesFromArray(prop, v.arr)
}

// Set overwrites the slot and reports whether the store defined a new
// property.
func Set(o Object, prop string, value Value) (bool, error) {
	return o.Set(prop, value)
}

// SetArray stores a slice of values as an array-kind value.
func SetArray(o Object, prop string, values []Value) (bool, error) {
	items := make([]Value, len(values))
	copy(items, values)
	return o.Set(prop, Value{kind: KindArray, arr: items})
}

// Property is a named value for multi-key writes.
type Property struct {
	Name  string
	Value Value
}

// SetProperties applies the writes in order. There is no rollback: if a write
// fails, earlier writes remain applied, and the caller must treat partial
// application as a real possibility.
func SetProperties(o Object, props []Property) error {
	for _, p := range props {
		if _, err := o.Set(p.Name, p.Value); err != nil {
			return fmt.Errorf("set %q: %w", p.Name, err)
		}
	}
	return nil
}

// Delete removes the slot and reports whether a property existed.
func Delete(o Object, prop string) (bool, error) {
	return o.Delete(prop)
}

// coerce converts a present value to the target type. It writes nothing on
// failure.
func coerce[T Coercible](prop string, v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		if v.kind != KindBool {
			return out, &TypeMismatchError{Prop: prop, Expected: KindBool, Actual: v.kind}
		}
		*p = v.b
	case *string:
		if v.kind != KindString {
			return out, &TypeMismatchError{Prop: prop, Expected: KindString, Actual: v.kind}
		}
		*p = v.str
	case *float64:
		if v.kind != KindNumber {
			return out, &CoercionError{Prop: prop, Detail: fmt.Sprintf("expected number, got %s", v.kind)}
		}
		*p = v.num
	case *uint8:
		n, err := uintFromValue(prop, v, math.MaxUint8)
		if err != nil {
			return out, err
		}
		*p = uint8(n)
	case *uint16:
		n, err := uintFromValue(prop, v, math.MaxUint16)
		if err != nil {
			return out, err
		}
		*p = uint16(n)
	case *uint32:
		n, err := uintFromValue(prop, v, math.MaxUint32)
		if err != nil {
			return out, err
		}
		*p = uint32(n)
	case *uint64:
		n, err := uintFromValue(prop, v, math.MaxUint64)
		if err != nil {
			return out, err
		}
		*p = n
	case *[]Value:
		if v.kind != KindArray {
			return out, &TypeMismatchError{Prop: prop, Expected: KindArray, Actual: v.kind}
		}
		// a copy, like SetArray: callers must not reach the stored slice
		items := make([]Value, len(v.arr))
		copy(items, v.arr)
		*p = items
	case *[]byte:
		b, err := bytesFromValue(prop, v)
		if err != nil {
			return out, err
		}
		*p = b
	}
	return out, nil
}

// uintFromValue truncates toward zero and saturates into [0, max]. NaN is not
// coercible.
func uintFromValue(prop string, v Value, max uint64) (uint64, error) {
	if v.kind != KindNumber {
		return 0, &CoercionError{Prop: prop, Detail: fmt.Sprintf("expected number, got %s", v.kind)}
	}
	n := v.num
	if math.IsNaN(n) {
		return 0, &CoercionError{Prop: prop, Detail: "number is NaN"}
	}
	n = math.Trunc(n)
	if n <= 0 {
		return 0, nil
	}
	if n >= float64(max) {
		return max, nil
	}
	return uint64(n), nil
}

func bytesFromValue(prop string, v Value) ([]byte, error) {
	switch v.kind {
	case KindString:
		b, err := hex.DecodeString(v.str)
		if err != nil {
			return nil, &CoercionError{Prop: prop, Detail: fmt.Sprintf("invalid hex string: %v", err)}
		}
		return b, nil
	case KindArray:
		return bytesFromArray(prop, v.arr)
	default:
		return nil, &CoercionError{Prop: prop, Detail: fmt.Sprintf("expected hex string or number array, got %s", v.kind)}
	}
}

func bytesFromArray(prop string, items []Value) ([]byte, error) {
	out := make([]byte, len(items))
	for i, item := range items {
		n, err := uintFromValue(prop, item, math.MaxUint8)
		if err != nil {
			return nil, &CoercionError{Prop: prop, Detail: fmt.Sprintf("element %d is not a byte: %v", i, err)}
		}
		out[i] = uint8(n)
	}
	return out, nil
}

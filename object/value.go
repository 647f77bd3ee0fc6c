package object

import "fmt"

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindHandle
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindHandle:
		return "handle"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a dynamically-typed value as stored in a host object. Numbers are
// carried as float64, matching the host's single numeric representation.
// The zero Value is the undefined value.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	arr    []Value
	obj    Object
	handle interface{}
}

// Undefined returns the undefined value. An absent property slot reads as
// undefined; storing undefined into a slot makes it read as absent.
func Undefined() Value {
	return Value{kind: KindUndefined}
}

// Null returns the explicit null value. Null is distinct from undefined:
// a null slot is present, it just holds no usable value.
func Null() Value {
	return Value{kind: KindNull}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int is a convenience constructor for integer-valued numbers.
func Int(n int64) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

// ObjectValue wraps a nested object.
func ObjectValue(o Object) Value {
	return Value{kind: KindObject, obj: o}
}

// Handle wraps an opaque host resource (a function, a native handle) that the
// accessor layer passes through without interpreting.
func Handle(v interface{}) Value {
	return Value{kind: KindHandle, handle: v}
}

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }

// HandleValue returns the wrapped host resource, or nil for any other kind.
func (v Value) HandleValue() interface{} {
	if v.kind != KindHandle {
		return nil
	}
	return v.handle
}

// Interface converts the value to its plain Go representation, suitable for
// JSON encoding. Undefined and null both map to nil; nested objects map to
// map[string]interface{} when they are enumerable, nil otherwise.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindUndefined, KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		items := make([]interface{}, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		if e, ok := v.obj.(Enumerable); ok {
			dump, err := Dump(e)
			if err == nil {
				return dump
			}
		}
		return nil
	case KindHandle:
		return v.handle
	}
	return nil
}

// FromInterface converts a plain Go value, as produced by the json or plist
// decoders, into a Value. Unrecognized types become opaque handles.
func FromInterface(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case string:
		return String(t)
	case []byte:
		items := make([]Value, len(t))
		for i, b := range t {
			items[i] = Number(float64(b))
		}
		return Array(items...)
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromInterface(item)
		}
		return Array(items...)
	case map[string]interface{}:
		return ObjectValue(FromDocument(t))
	case Value:
		return t
	default:
		return Handle(x)
	}
}

// FromDocument builds a MapObject from a decoded document.
func FromDocument(doc map[string]interface{}) *MapObject {
	obj := NewMapObject()
	for k, v := range doc {
		_, _ = obj.Set(k, FromInterface(v))
	}
	return obj
}

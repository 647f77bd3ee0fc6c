package object

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	obj := NewMapObject()

	_, err := Set(obj, "s", String("hello"))
	require.NoError(t, err)
	_, err = Set(obj, "b", Bool(true))
	require.NoError(t, err)
	_, err = Set(obj, "n", Number(42.5))
	require.NoError(t, err)

	s, err := GetString(obj, "s")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	b, err := GetBool(obj, "b")
	require.NoError(t, err)
	assert.True(t, b)

	n, err := GetFloat64(obj, "n")
	require.NoError(t, err)
	assert.Equal(t, 42.5, n)
}

func TestMissingPropertyOnEveryTypedGetter(t *testing.T) {
	obj := NewMapObject()

	assertMissing := func(err error) {
		t.Helper()
		var missing *MissingPropertyError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "missing", missing.Prop)
	}

	_, err := GetString(obj, "missing")
	assertMissing(err)
	_, err = GetBool(obj, "missing")
	assertMissing(err)
	_, err = GetUint8(obj, "missing")
	assertMissing(err)
	_, err = GetUint16(obj, "missing")
	assertMissing(err)
	_, err = GetUint32(obj, "missing")
	assertMissing(err)
	_, err = GetUint64(obj, "missing")
	assertMissing(err)
	_, err = GetFloat64(obj, "missing")
	assertMissing(err)
	_, err = GetArray(obj, "missing")
	assertMissing(err)
	_, err = GetBytes(obj, "missing")
	assertMissing(err)
	_, err = GetObject(obj, "missing")
	assertMissing(err)
}

func TestUndefinedSlotReadsAsMissing(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "p", Undefined())
	require.NoError(t, err)

	_, err = GetString(obj, "p")
	var missing *MissingPropertyError
	assert.ErrorAs(t, err, &missing)
}

func TestTryGet(t *testing.T) {
	obj := NewMapObject()

	s, ok, err := TryGetString(obj, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", s)

	_, err = Set(obj, "p", String("value"))
	require.NoError(t, err)

	s, ok, err = TryGetString(obj, "p")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", s)
}

func TestTryGetPresentNullFails(t *testing.T) {
	// null is present, not absent; it goes through coercion and fails
	obj := NewMapObject()
	_, err := Set(obj, "p", Null())
	require.NoError(t, err)

	_, ok, err := TryGetString(obj, "p")
	assert.False(t, ok)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindNull, mismatch.Actual)
}

func TestGetBytesHexAndArrayAgree(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "hex", String("0a1b"))
	require.NoError(t, err)
	_, err = Set(obj, "arr", Array(Number(10), Number(27)))
	require.NoError(t, err)

	fromHex, err := GetBytes(obj, "hex")
	require.NoError(t, err)
	fromArr, err := GetBytes(obj, "arr")
	require.NoError(t, err)

	assert.Equal(t, []byte{0x0a, 0x1b}, fromHex)
	assert.Equal(t, fromHex, fromArr)
}

func TestGetBytesRejectsOtherKinds(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "p", Bool(true))
	require.NoError(t, err)

	_, err = GetBytes(obj, "p")
	var coercion *CoercionError
	assert.ErrorAs(t, err, &coercion)

	_, err = Set(obj, "bad", String("zz"))
	require.NoError(t, err)
	_, err = GetBytes(obj, "bad")
	assert.ErrorAs(t, err, &coercion)
}

func TestGetBytesFromNumberArray(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "arr", Array(Number(1), Number(2), Number(3)))
	require.NoError(t, err)
	_, err = Set(obj, "hex", String("010203"))
	require.NoError(t, err)

	b, err := GetBytesFromNumberArray(obj, "arr")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	// the strict variant rejects the hex representation
	_, err = GetBytesFromNumberArray(obj, "hex")
	var mismatch *TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestDelete(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "p", Number(1))
	require.NoError(t, err)

	removed, err := Delete(obj, "p")
	require.NoError(t, err)
	assert.True(t, removed)

	v, err := GetValue(obj, "p")
	require.NoError(t, err)
	assert.True(t, v.IsUndefined())

	removed, err = Delete(obj, "p")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSetReportsNewProperty(t *testing.T) {
	obj := NewMapObject()

	wasNew, err := Set(obj, "p", Number(1))
	require.NoError(t, err)
	assert.True(t, wasNew)

	wasNew, err = Set(obj, "p", Number(2))
	require.NoError(t, err)
	assert.False(t, wasNew)
}

func TestSetProperties(t *testing.T) {
	obj := NewMapObject()
	err := SetProperties(obj, []Property{
		{Name: "a", Value: Number(1)},
		{Name: "b", Value: String("two")},
	})
	require.NoError(t, err)

	a, err := GetFloat64(obj, "a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)

	b, err := GetString(obj, "b")
	require.NoError(t, err)
	assert.Equal(t, "two", b)
}

func TestSetPropertiesPartialApplication(t *testing.T) {
	obj := &failAfter{MapObject: NewMapObject(), allowed: 1}
	err := SetProperties(obj, []Property{
		{Name: "a", Value: Number(1)},
		{Name: "b", Value: Number(2)},
	})
	require.Error(t, err)

	// the earlier write stays applied
	a, err := GetFloat64(obj.MapObject, "a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)

	_, err = GetFloat64(obj.MapObject, "b")
	var missing *MissingPropertyError
	assert.ErrorAs(t, err, &missing)
}

func TestGetBoolOnStringFails(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "p", String("true"))
	require.NoError(t, err)

	b, err := GetBool(obj, "p")
	assert.False(t, b)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindBool, mismatch.Expected)
	assert.Equal(t, KindString, mismatch.Actual)
}

func TestGetStringDoesNotStringify(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "n", Number(42))
	require.NoError(t, err)

	_, err = GetString(obj, "n")
	var mismatch *TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestNumericTruncationAndSaturation(t *testing.T) {
	obj := NewMapObject()

	tests := []struct {
		name  string
		value float64
		want  uint8
	}{
		{"truncates toward zero", 3.9, 3},
		{"negative saturates to zero", -5, 0},
		{"above max saturates", 300, 255},
		{"exact max", 255, 255},
		{"positive infinity saturates", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Set(obj, "n", Number(tt.value))
			require.NoError(t, err)
			got, err := GetUint8(obj, "n")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericWideWidths(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "n", Number(70000))
	require.NoError(t, err)

	u16, err := GetUint16(obj, "n")
	require.NoError(t, err)
	assert.Equal(t, uint16(math.MaxUint16), u16)

	u32, err := GetUint32(obj, "n")
	require.NoError(t, err)
	assert.Equal(t, uint32(70000), u32)

	u64, err := GetUint64(obj, "n")
	require.NoError(t, err)
	assert.Equal(t, uint64(70000), u64)
}

func TestNumericNaNFails(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "n", Number(math.NaN()))
	require.NoError(t, err)

	_, err = GetUint32(obj, "n")
	var coercion *CoercionError
	assert.ErrorAs(t, err, &coercion)
}

func TestNumericGetterOnNonNumberFails(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "p", String("12"))
	require.NoError(t, err)

	_, err = GetUint32(obj, "p")
	var coercion *CoercionError
	assert.ErrorAs(t, err, &coercion)
}

func TestGetObject(t *testing.T) {
	obj := NewMapObject()
	nested := NewMapObject()
	_, err := nested.Set("inner", String("value"))
	require.NoError(t, err)
	_, err = Set(obj, "child", ObjectValue(nested))
	require.NoError(t, err)

	child, err := GetObject(obj, "child")
	require.NoError(t, err)
	inner, err := GetString(child, "inner")
	require.NoError(t, err)
	assert.Equal(t, "value", inner)
}

func TestGetObjectWrongKindIsTypeMismatch(t *testing.T) {
	// present-but-not-object reports a mismatch, distinct from missing
	obj := NewMapObject()
	_, err := Set(obj, "p", Number(1))
	require.NoError(t, err)

	_, err = GetObject(obj, "p")
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindObject, mismatch.Expected)

	var missing *MissingPropertyError
	assert.False(t, errors.As(err, &missing))
}

func TestTryGetObject(t *testing.T) {
	obj := NewMapObject()

	_, ok, err := TryGetObject(obj, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Set(obj, "child", ObjectValue(NewMapObject()))
	require.NoError(t, err)
	child, ok, err := TryGetObject(obj, "child")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, child)
}

func TestFailedGetDoesNotMutate(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "p", String("text"))
	require.NoError(t, err)

	_, err = GetBool(obj, "p")
	require.Error(t, err)

	s, err := GetString(obj, "p")
	require.NoError(t, err)
	assert.Equal(t, "text", s)
	assert.Equal(t, 1, obj.Len())
}

func TestSetArray(t *testing.T) {
	obj := NewMapObject()
	_, err := SetArray(obj, "arr", []Value{Number(1), Number(2)})
	require.NoError(t, err)

	items, err := GetArray(obj, "arr")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, KindNumber, items[0].Kind())
}

func TestGetArrayReturnsCopy(t *testing.T) {
	obj := NewMapObject()
	_, err := SetArray(obj, "arr", []Value{Number(1), Number(2)})
	require.NoError(t, err)

	items, err := GetArray(obj, "arr")
	require.NoError(t, err)
	items[0] = String("clobbered")

	again, err := GetArray(obj, "arr")
	require.NoError(t, err)
	assert.Equal(t, KindNumber, again[0].Kind())
}

func TestGenericGet(t *testing.T) {
	obj := NewMapObject()
	_, err := Set(obj, "n", Number(7))
	require.NoError(t, err)

	u, err := Get[uint64](obj, "n")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)

	f, ok, err := TryGet[float64](obj, "n")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)
}

// failAfter is an Object that rejects writes after a set count, for exercising
// partial application.
type failAfter struct {
	*MapObject
	allowed int
}

func (f *failAfter) Set(prop string, value Value) (bool, error) {
	if f.allowed == 0 {
		return false, errors.New("store rejected write")
	}
	f.allowed--
	return f.MapObject.Set(prop, value)
}

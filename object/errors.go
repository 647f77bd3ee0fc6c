package object

import "fmt"

// MissingPropertyError reports a required property that was absent (or held
// the undefined value) when a value was needed.
type MissingPropertyError struct {
	Prop string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("missing property %q", e.Prop)
}

// TypeMismatchError reports a present value whose kind does not match the
// kind a getter requires exactly.
type TypeMismatchError struct {
	Prop     string
	Expected Kind
	Actual   Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("property %q: expected %s, got %s", e.Prop, e.Expected, e.Actual)
}

// CoercionError reports a present value whose content could not be converted
// to the requested type.
type CoercionError struct {
	Prop   string
	Detail string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("property %q: cannot coerce: %s", e.Prop, e.Detail)
}

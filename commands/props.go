package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/benrod3k/hostobj/object"
)

// GetRequest represents the parameters for a typed property read
type GetRequest struct {
	Object string `json:"object"`
	Prop   string `json:"prop"`
	Type   string `json:"type,omitempty"` // see readTyped for accepted names
	Try    bool   `json:"try,omitempty"`  // absent property yields present=false instead of an error
}

// GetResponse represents the response for a get command
type GetResponse struct {
	Object  string      `json:"object"`
	Prop    string      `json:"prop"`
	Kind    string      `json:"kind,omitempty"`
	Present bool        `json:"present"`
	Value   interface{} `json:"value"`
}

// GetCommand reads one property with the requested coercion
func GetCommand(req GetRequest) *CommandResponse {
	obj, err := FindObject(req.Object)
	if err != nil {
		return NewErrorResponse(err)
	}
	if req.Prop == "" {
		return NewErrorResponse(fmt.Errorf("'prop' is required"))
	}

	resp := GetResponse{Object: req.Object, Prop: req.Prop}

	raw, err := object.GetValue(obj, req.Prop)
	if err != nil {
		return NewErrorResponse(err)
	}
	resp.Kind = raw.Kind().String()

	if req.Try {
		value, present, err := tryReadTyped(obj, req.Prop, req.Type)
		if err != nil {
			return NewErrorResponse(err)
		}
		resp.Present = present
		resp.Value = value
		return NewSuccessResponse(resp)
	}

	value, err := readTyped(obj, req.Prop, req.Type)
	if err != nil {
		return NewErrorResponse(err)
	}
	resp.Present = true
	resp.Value = value
	return NewSuccessResponse(resp)
}

// SetRequest represents the parameters for a property write
type SetRequest struct {
	Object string      `json:"object"`
	Prop   string      `json:"prop"`
	Value  interface{} `json:"value"`
	Type   string      `json:"type,omitempty"` // parse Value (a string) per this type; empty means as-is
	Save   bool        `json:"save,omitempty"` // persist the document after the write
}

// SetResponse represents the response for a set command
type SetResponse struct {
	Object  string `json:"object"`
	Prop    string `json:"prop"`
	Defined bool   `json:"defined"` // whether the write defined a new property
}

// SetCommand writes one property through the store
func SetCommand(req SetRequest) *CommandResponse {
	s, err := GetStore()
	if err != nil {
		return NewErrorResponse(err)
	}
	if req.Object == "" {
		return NewErrorResponse(fmt.Errorf("object name is required"))
	}
	if req.Prop == "" {
		return NewErrorResponse(fmt.Errorf("'prop' is required"))
	}

	var value object.Value
	if req.Type != "" {
		raw, ok := req.Value.(string)
		if !ok {
			return NewErrorResponse(fmt.Errorf("'value' must be a string when 'type' is given"))
		}
		value, err = ParseTypedValue(raw, req.Type)
		if err != nil {
			return NewErrorResponse(err)
		}
	} else {
		value = object.FromInterface(req.Value)
	}

	wasNew, err := s.Apply(req.Object, req.Prop, value)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.Save {
		if err := s.Save(req.Object); err != nil {
			return NewErrorResponse(err)
		}
	}

	return NewSuccessResponse(SetResponse{Object: req.Object, Prop: req.Prop, Defined: wasNew})
}

// SetPropertiesRequest represents a multi-key write
type SetPropertiesRequest struct {
	Object string                 `json:"object"`
	Props  map[string]interface{} `json:"props"`
	Save   bool                   `json:"save,omitempty"`
}

// SetPropertiesCommand applies multiple writes in key order. There is no
// rollback: a failure can leave earlier writes applied.
func SetPropertiesCommand(req SetPropertiesRequest) *CommandResponse {
	s, err := GetStore()
	if err != nil {
		return NewErrorResponse(err)
	}
	if req.Object == "" {
		return NewErrorResponse(fmt.Errorf("object name is required"))
	}
	if len(req.Props) == 0 {
		return NewErrorResponse(fmt.Errorf("'props' is required"))
	}

	keys := make([]string, 0, len(req.Props))
	for k := range req.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]object.Property, 0, len(keys))
	for _, k := range keys {
		props = append(props, object.Property{Name: k, Value: object.FromInterface(req.Props[k])})
	}

	if err := s.ApplyAll(req.Object, props); err != nil {
		return NewErrorResponse(err)
	}

	if req.Save {
		if err := s.Save(req.Object); err != nil {
			return NewErrorResponse(err)
		}
	}

	return NewSuccessResponse(map[string]interface{}{
		"object": req.Object,
		"count":  len(props),
	})
}

// DeleteRequest represents the parameters for a property delete
type DeleteRequest struct {
	Object string `json:"object"`
	Prop   string `json:"prop"`
	Save   bool   `json:"save,omitempty"`
}

// DeleteCommand removes one property
func DeleteCommand(req DeleteRequest) *CommandResponse {
	s, err := GetStore()
	if err != nil {
		return NewErrorResponse(err)
	}
	if req.Object == "" {
		return NewErrorResponse(fmt.Errorf("object name is required"))
	}
	if req.Prop == "" {
		return NewErrorResponse(fmt.Errorf("'prop' is required"))
	}

	removed, err := s.Remove(req.Object, req.Prop)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.Save {
		if err := s.Save(req.Object); err != nil {
			return NewErrorResponse(err)
		}
	}

	return NewSuccessResponse(map[string]interface{}{
		"object":  req.Object,
		"prop":    req.Prop,
		"removed": removed,
	})
}

// readTyped applies the named coercion. Supported types: string, bool, u8,
// u16, u32, u64, f64, bytes, array, object, and "" or "any" for the raw
// value.
func readTyped(o object.Object, prop, typ string) (interface{}, error) {
	switch typ {
	case "", "any":
		v, err := o.Get(prop)
		if err != nil {
			return nil, err
		}
		if v.IsUndefined() {
			return nil, &object.MissingPropertyError{Prop: prop}
		}
		return v.Interface(), nil
	case "string":
		return object.GetString(o, prop)
	case "bool":
		return object.GetBool(o, prop)
	case "u8":
		return object.GetUint8(o, prop)
	case "u16":
		return object.GetUint16(o, prop)
	case "u32":
		return object.GetUint32(o, prop)
	case "u64":
		return object.GetUint64(o, prop)
	case "f64":
		return object.GetFloat64(o, prop)
	case "bytes":
		b, err := object.GetBytes(o, prop)
		if err != nil {
			return nil, err
		}
		return hex.EncodeToString(b), nil
	case "array":
		items, err := object.GetArray(o, prop)
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = item.Interface()
		}
		return out, nil
	case "object":
		nested, err := object.GetObject(o, prop)
		if err != nil {
			return nil, err
		}
		e, ok := nested.(object.Enumerable)
		if !ok {
			return nil, fmt.Errorf("object at %q is not enumerable", prop)
		}
		return object.Dump(e)
	default:
		return nil, fmt.Errorf("unknown type %q", typ)
	}
}

func tryReadTyped(o object.Object, prop, typ string) (interface{}, bool, error) {
	v, err := o.Get(prop)
	if err != nil {
		return nil, false, err
	}
	if v.IsUndefined() {
		return nil, false, nil
	}
	value, err := readTyped(o, prop, typ)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// ParseTypedValue parses a string per the named type into a dynamic value.
// Used by the CLI, where every input arrives as text.
func ParseTypedValue(raw, typ string) (object.Value, error) {
	switch typ {
	case "string":
		return object.String(raw), nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return object.Undefined(), fmt.Errorf("invalid bool %q", raw)
		}
		return object.Bool(b), nil
	case "u8", "u16", "u32", "u64":
		bits := map[string]int{"u8": 8, "u16": 16, "u32": 32, "u64": 64}[typ]
		n, err := strconv.ParseUint(raw, 10, bits)
		if err != nil {
			return object.Undefined(), fmt.Errorf("invalid %s %q", typ, raw)
		}
		return object.Number(float64(n)), nil
	case "f64":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return object.Undefined(), fmt.Errorf("invalid f64 %q", raw)
		}
		return object.Number(f), nil
	case "bytes":
		if _, err := hex.DecodeString(raw); err != nil {
			return object.Undefined(), fmt.Errorf("invalid hex string %q", raw)
		}
		// stored as the hex-string representation; GetBytes accepts it
		return object.String(raw), nil
	case "null":
		return object.Null(), nil
	case "json":
		var x interface{}
		if err := json.Unmarshal([]byte(raw), &x); err != nil {
			return object.Undefined(), fmt.Errorf("invalid json: %v", err)
		}
		return object.FromInterface(x), nil
	default:
		return object.Undefined(), fmt.Errorf("unknown type %q", typ)
	}
}

package schema

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/cubeworks/mc-manager/internal/api"
)

// ValueKind tags which alternative of the union a Value holds.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueString
	ValueInt
	ValueUint
)

// Value is a client-supplied property value: a bool, a string, or an
// integer. It decodes from the natural JSON representation of each.
type Value struct {
	kind ValueKind
	b    bool
	s    string
	i    int64
	u    uint64
}

func BoolValue(v bool) Value     { return Value{kind: ValueBool, b: v} }
func StringValue(v string) Value { return Value{kind: ValueString, s: v} }
func IntValue(v int64) Value     { return Value{kind: ValueInt, i: v} }
func UintValue(v uint64) Value   { return Value{kind: ValueUint, u: v} }

func (v Value) Kind() ValueKind { return v.kind }

func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*v = IntValue(i)
		return nil
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return err
	}
	*v = UintValue(u)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueBool:
		return json.Marshal(v.b)
	case ValueString:
		return json.Marshal(v.s)
	case ValueInt:
		return json.Marshal(v.i)
	default:
		return json.Marshal(v.u)
	}
}

// PropString renders the value the way it is stored in a property file,
// before escaping.
func (v Value) PropString() string {
	switch v.kind {
	case ValueBool:
		if v.b {
			return "true"
		}
		return "false"
	case ValueString:
		return v.s
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	default:
		return strconv.FormatUint(v.u, 10)
	}
}

// asInt converts a numeric value to int64, reporting whether it fits.
func (v Value) asInt() (int64, bool) {
	switch v.kind {
	case ValueInt:
		return v.i, true
	case ValueUint:
		if v.u > 1<<63-1 {
			return 0, false
		}
		return int64(v.u), true
	}
	return 0, false
}

// asUint converts a numeric value to uint64, reporting whether it fits.
func (v Value) asUint() (uint64, bool) {
	switch v.kind {
	case ValueUint:
		return v.u, true
	case ValueInt:
		if v.i < 0 {
			return 0, false
		}
		return uint64(v.i), true
	}
	return 0, false
}

// Validate checks every override against the catalogue: the key must
// exist, must be writable, and the value must lie in the property's typed
// domain. The first violation is returned.
func Validate(values map[string]Value) error {
	for key, value := range values {
		def := Lookup(key)
		if def == nil {
			return api.PropertyNotFound(key)
		}
		if def.Access != AccessWrite {
			return api.PropertyReadOnly(key)
		}
		if !inDomain(def.Type, value) {
			return api.PropertyInvalid(key)
		}
	}
	return nil
}

func inDomain(ty Type, value Value) bool {
	switch ty := ty.(type) {
	case Bool:
		return value.kind == ValueBool
	case String:
		return value.kind == ValueString
	case Int:
		i, ok := value.asInt()
		return ok && i >= ty.Min && i <= ty.Max
	case Uint:
		u, ok := value.asUint()
		return ok && u >= ty.Min && u <= ty.Max
	case Datetime:
		if value.kind != ValueString || len(value.s) != 19 {
			return false
		}
		_, err := time.Parse("2006-01-02 15:04:05", value.s)
		return err == nil
	case IntEnum:
		u, ok := value.asUint()
		return ok && u < uint64(len(ty.Members))
	case StrEnum:
		if value.kind != ValueString {
			return false
		}
		for _, m := range ty.Members {
			if m.Value == value.s {
				return true
			}
		}
		return false
	}
	return false
}

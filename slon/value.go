package slon

import (
	"fmt"
	"sort"
	"time"
)

// Kind identifies the variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindDate
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
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
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value represents one SLON value.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind)
	boolVal bool
	numVal  float64
	strVal  string
	dateVal time.Time

	// Container payloads
	arrVal []*Value
	objVal []Entry // always sorted by key, keys unique
}

// Entry represents a key-value pair in an object.
type Entry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a numeric value. SLON numbers are IEEE-754 doubles and
// must be finite; NaN and infinities have no textual form.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value.
func Array(values ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: values}
}

// Object creates an object value from entries. Duplicate keys resolve to
// the last entry given; iteration order is ascending by key regardless of
// the order entries are passed in.
func Object(entries ...Entry) *Value {
	v := &Value{kind: KindObject, objVal: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

// Date creates a date value. The instant is normalized to UTC and
// truncated to millisecond precision.
func Date(t time.Time) *Value {
	return &Value{kind: KindDate, dateVal: t.UTC().Truncate(time.Millisecond)}
}

// Field creates an Entry for use in Object construction.
func Field(key string, value *Value) Entry {
	return Entry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("slon: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("slon: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsNumber returns the numeric payload.
func (v *Value) AsNumber() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("slon: nil value")
	}
	if v.kind != KindNumber {
		return 0, fmt.Errorf("slon: expected number, got %s", v.kind)
	}
	return v.numVal, nil
}

// AsStr returns the string payload.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("slon: nil value")
	}
	if v.kind != KindString {
		return "", fmt.Errorf("slon: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsArray returns the array elements.
func (v *Value) AsArray() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("slon: nil value")
	}
	if v.kind != KindArray {
		return nil, fmt.Errorf("slon: expected array, got %s", v.kind)
	}
	return v.arrVal, nil
}

// AsDate returns the date payload.
func (v *Value) AsDate() (time.Time, error) {
	if v == nil {
		return time.Time{}, fmt.Errorf("slon: nil value")
	}
	if v.kind != KindDate {
		return time.Time{}, fmt.Errorf("slon: expected date, got %s", v.kind)
	}
	return v.dateVal, nil
}

// Entries returns the object entries in ascending key order.
func (v *Value) Entries() ([]Entry, error) {
	if v == nil {
		return nil, fmt.Errorf("slon: nil value")
	}
	if v.kind != KindObject {
		return nil, fmt.Errorf("slon: expected object, got %s", v.kind)
	}
	return v.objVal, nil
}

// Len returns the length of an array or object, 0 for anything else.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// Get returns an object entry by key, or nil if absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	if i, ok := v.search(key); ok {
		return v.objVal[i].Value
	}
	return nil
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, fmt.Errorf("slon: not an array")
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, fmt.Errorf("slon: index %d out of bounds (len=%d)", i, len(v.arrVal))
	}
	return v.arrVal[i], nil
}

// search locates key in the sorted entry slice. It returns the index of
// the key if present, otherwise the insertion point.
func (v *Value) search(key string) (int, bool) {
	i := sort.Search(len(v.objVal), func(i int) bool {
		return v.objVal[i].Key >= key
	})
	return i, i < len(v.objVal) && v.objVal[i].Key == key
}

// ============================================================
// Mutators
// ============================================================

// Set inserts or overwrites an object entry, keeping entries sorted by key.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		panic("slon: cannot set on non-object")
	}
	i, ok := v.search(key)
	if ok {
		v.objVal[i].Value = val
		return
	}
	v.objVal = append(v.objVal, Entry{})
	copy(v.objVal[i+1:], v.objVal[i:])
	v.objVal[i] = Entry{Key: key, Value: val}
}

// Delete removes an object entry by key. It reports whether the key was
// present.
func (v *Value) Delete(key string) bool {
	if v == nil || v.kind != KindObject {
		return false
	}
	i, ok := v.search(key)
	if !ok {
		return false
	}
	v.objVal = append(v.objVal[:i], v.objVal[i+1:]...)
	return true
}

// Append adds a value to an array.
func (v *Value) Append(val *Value) {
	if v.kind != KindArray {
		panic("slon: cannot append to non-array")
	}
	v.arrVal = append(v.arrVal, val)
}

// ============================================================
// Equality and Copying
// ============================================================

// Equal reports structural equality: same kind and same payload, with
// containers compared element by element.
func (v *Value) Equal(other *Value) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() && other.IsNull()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindString:
		return v.strVal == other.strVal
	case KindDate:
		return v.dateVal.Equal(other.dateVal)
	case KindArray:
		if len(v.arrVal) != len(other.arrVal) {
			return false
		}
		for i := range v.arrVal {
			if !v.arrVal[i].Equal(other.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.objVal) != len(other.objVal) {
			return false
		}
		for i := range v.objVal {
			if v.objVal[i].Key != other.objVal[i].Key {
				return false
			}
			if !v.objVal[i].Value.Equal(other.objVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy sharing no containers with the original.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindArray:
		elems := make([]*Value, len(v.arrVal))
		for i, e := range v.arrVal {
			elems[i] = e.Clone()
		}
		return &Value{kind: KindArray, arrVal: elems}
	case KindObject:
		entries := make([]Entry, len(v.objVal))
		for i, e := range v.objVal {
			entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
		return &Value{kind: KindObject, objVal: entries}
	default:
		clone := *v
		return &clone
	}
}

// String returns the SLON encoding of the value.
func (v *Value) String() string {
	return Encode(v)
}

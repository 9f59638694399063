package slon

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// FromGo converts a native Go value into a *Value.
//
// Supported inputs: nil, bool, all integer and float widths, string,
// time.Time, *Value (returned as-is), slices and arrays of supported
// values, and maps with string keys. Numbers become float64; NaN and
// infinities are rejected since SLON numbers must be finite.
func FromGo(v any) (*Value, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case *Value:
		return val, nil

	case bool:
		return Bool(val), nil

	case float64:
		return fromFloat(val)

	case float32:
		return fromFloat(float64(val))

	case int:
		return Number(float64(val)), nil
	case int8:
		return Number(float64(val)), nil
	case int16:
		return Number(float64(val)), nil
	case int32:
		return Number(float64(val)), nil
	case int64:
		return Number(float64(val)), nil
	case uint:
		return Number(float64(val)), nil
	case uint8:
		return Number(float64(val)), nil
	case uint16:
		return Number(float64(val)), nil
	case uint32:
		return Number(float64(val)), nil
	case uint64:
		return Number(float64(val)), nil

	case string:
		return Str(val), nil

	case time.Time:
		return Date(val), nil
	}

	// Fall back to reflection for named slice/map types.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := Array()
		for i := 0; i < rv.Len(); i++ {
			elem, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr.Append(elem)
		}
		return arr, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("slon: unsupported map key type %s", rv.Type().Key())
		}
		obj := Object()
		iter := rv.MapRange()
		for iter.Next() {
			entry, err := FromGo(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			obj.Set(iter.Key().String(), entry)
		}
		return obj, nil
	}

	return nil, fmt.Errorf("slon: unsupported type %T", v)
}

func fromFloat(f float64) (*Value, error) {
	if math.IsNaN(f) {
		return nil, fmt.Errorf("slon: NaN is not representable")
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("slon: infinity is not representable")
	}
	return Number(f), nil
}

// Interface converts the value back to native Go types: nil, bool,
// float64, string, time.Time, []any, and map[string]any. The inverse of
// FromGo, modulo numeric widening and map iteration order.
func (v *Value) Interface() any {
	if v.IsNull() {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal
	case KindString:
		return v.strVal
	case KindDate:
		return v.dateVal
	case KindArray:
		out := make([]any, len(v.arrVal))
		for i, elem := range v.arrVal {
			out[i] = elem.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.objVal))
		for _, entry := range v.objVal {
			out[entry.Key] = entry.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

package slon

import (
	"encoding/json"
	"fmt"
)

// FromJSON converts JSON bytes to a *Value. JSON has no date type, so
// decoded documents never contain KindDate; timestamps arrive as strings.
func FromJSON(data []byte) (*Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("slon: JSON parse error: %w", err)
	}
	return FromGo(v)
}

// ToJSON converts a *Value to JSON bytes. Dates are rendered as strings
// in the SLON timestamp layout; object keys come out in ascending order,
// matching the SLON encoder.
func ToJSON(v *Value) ([]byte, error) {
	return json.Marshal(jsonValue(v))
}

// jsonValue maps a Value onto the encoding/json value domain.
func jsonValue(v *Value) any {
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
		return v.dateVal.UTC().Format(dateLayout)
	case KindArray:
		out := make([]any, len(v.arrVal))
		for i, elem := range v.arrVal {
			out[i] = jsonValue(elem)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.objVal))
		for _, entry := range v.objVal {
			out[entry.Key] = jsonValue(entry.Value)
		}
		return out
	default:
		return nil
	}
}

package slon

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Encode converts a Value to SLON text. Encoding is total and
// deterministic: every Value has exactly one rendering, with object keys
// emitted in ascending order.
func Encode(v *Value) string {
	e := &emitter{}
	e.emit(v)
	return e.sb.String()
}

// EncodeTo writes the SLON encoding of v to w.
func EncodeTo(w io.Writer, v *Value) error {
	_, err := io.WriteString(w, Encode(v))
	return err
}

type emitter struct {
	sb strings.Builder
}

func (e *emitter) emit(v *Value) {
	if v.IsNull() {
		e.sb.WriteString("null")
		return
	}

	switch v.kind {
	case KindBool:
		if v.boolVal {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}

	case KindNumber:
		e.emitNumber(v.numVal)

	case KindString:
		e.emitString(v.strVal)

	case KindArray:
		e.emitArray(v)

	case KindObject:
		e.emitObject(v)

	case KindDate:
		e.sb.WriteString(v.dateVal.UTC().Format(dateLayout))
	}
}

// emitNumber renders integral values without a decimal point and
// everything else with the shortest representation that round-trips.
func (e *emitter) emitNumber(f float64) {
	if f == math.Trunc(f) {
		e.sb.WriteString(strconv.FormatFloat(f, 'f', 0, 64))
		return
	}
	e.sb.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
}

// emitString renders a single-quoted string. Only backslash, the single
// quote, and the three common control characters are escaped; everything
// else (double quotes included) passes through verbatim.
func (e *emitter) emitString(s string) {
	e.sb.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\\':
			e.sb.WriteString(`\\`)
		case '\'':
			e.sb.WriteString(`\'`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		default:
			e.sb.WriteByte(ch)
		}
	}
	e.sb.WriteByte('\'')
}

func (e *emitter) emitArray(v *Value) {
	e.sb.WriteByte('[')
	for i, elem := range v.arrVal {
		if i > 0 {
			e.sb.WriteString(" | ")
		}
		e.emit(elem)
	}
	e.sb.WriteByte(']')
}

func (e *emitter) emitObject(v *Value) {
	e.sb.WriteByte('(')
	for i, entry := range v.objVal {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.emitKey(entry.Key)
		e.sb.WriteString(": ")
		e.emit(entry.Value)
	}
	e.sb.WriteByte(')')
}

func (e *emitter) emitKey(key string) {
	if keyNeedsQuoting(key) {
		e.emitString(key)
		return
	}
	e.sb.WriteString(key)
}

// keyNeedsQuoting reports whether a key cannot be emitted as a bare word:
// empty keys and keys containing a delimiter, quote, or whitespace.
func keyNeedsQuoting(key string) bool {
	if key == "" {
		return true
	}
	for _, r := range key {
		switch r {
		case ':', ',', '(', ')', '[', ']', '|', '"', '\'':
			return true
		}
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

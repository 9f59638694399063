package slon

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Error represents a decode failure at a byte offset in the input.
type Error struct {
	Message  string
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

// dateLayout is the fixed 23-character SLON timestamp pattern.
const dateLayout = "2006-01-02/15:04:05.000"

const dateLen = len(dateLayout)

// Decode converts SLON text into a *Value. It consumes the entire input:
// anything but whitespace after the top-level value is an error. On
// failure the returned error is an *Error carrying the byte offset at
// which decoding stopped.
func Decode(input string) (*Value, error) {
	d := &decoder{input: input}
	d.skipWhitespace()
	v, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	d.skipWhitespace()
	if !d.end() {
		return nil, d.fail("Unexpected trailing content")
	}
	return v, nil
}

// DecodeFrom reads r to completion and decodes the result.
func DecodeFrom(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("slon: read input: %w", err)
	}
	return Decode(string(data))
}

// decoder is a byte-indexed cursor over the input text. All structurally
// significant characters are single bytes, so the scanner never needs to
// decode UTF-8 sequences; multi-byte runs pass through untouched.
type decoder struct {
	input string
	pos   int
}

func (d *decoder) end() bool {
	return d.pos >= len(d.input)
}

func (d *decoder) peek() (byte, bool) {
	if d.end() {
		return 0, false
	}
	return d.input[d.pos], true
}

func (d *decoder) skipWhitespace() {
	for !d.end() && isWhitespace(d.input[d.pos]) {
		d.pos++
	}
}

func (d *decoder) fail(message string) *Error {
	return &Error{Message: message, Position: d.pos}
}

// decodeValue decodes one value, dispatching on the first significant byte.
func (d *decoder) decodeValue() (*Value, error) {
	d.skipWhitespace()
	ch, ok := d.peek()
	if !ok {
		return nil, d.fail("Unexpected end of input")
	}
	switch {
	case ch == '(':
		return d.decodeObject()
	case ch == '[':
		return d.decodeArray()
	case ch == '\'' || ch == '"':
		s, err := d.decodeQuotedString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case ch == '-' || (ch >= '0' && ch <= '9'):
		if v, ok := d.tryDecodeDate(); ok {
			return v, nil
		}
		return d.decodeNumber()
	default:
		if d.matchKeyword("true") {
			return Bool(true), nil
		}
		if d.matchKeyword("false") {
			return Bool(false), nil
		}
		if d.matchKeyword("null") {
			return Null(), nil
		}
		s, err := d.decodeUnquotedString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	}
}

func (d *decoder) decodeObject() (*Value, error) {
	d.pos++ // '('
	obj := Object()
	d.skipWhitespace()
	if ch, ok := d.peek(); ok && ch == ')' {
		d.pos++
		return obj, nil
	}
	for {
		d.skipWhitespace()
		key, err := d.decodeStringLike()
		if err != nil {
			return nil, err
		}
		d.skipWhitespace()
		if ch, ok := d.peek(); !ok || ch != ':' {
			return nil, d.fail("Expected ':' after key")
		}
		d.pos++
		val, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val) // duplicate key: last write wins
		d.skipWhitespace()
		ch, ok := d.peek()
		switch {
		case ok && ch == ',':
			d.pos++
		case ok && ch == ')':
			d.pos++
			return obj, nil
		default:
			return nil, d.fail("Expected ',' or ')'")
		}
	}
}

func (d *decoder) decodeArray() (*Value, error) {
	d.pos++ // '['
	arr := Array()
	d.skipWhitespace()
	if ch, ok := d.peek(); ok && ch == ']' {
		d.pos++
		return arr, nil
	}
	for {
		val, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		arr.Append(val)
		d.skipWhitespace()
		ch, ok := d.peek()
		switch {
		case ok && ch == '|':
			d.pos++
		case ok && ch == ']':
			d.pos++
			return arr, nil
		default:
			return nil, d.fail("Expected '|' or ']'")
		}
	}
}

// decodeStringLike decodes an object key: quoted if the next byte is a
// quote, otherwise a bare word.
func (d *decoder) decodeStringLike() (string, error) {
	if ch, ok := d.peek(); ok && (ch == '\'' || ch == '"') {
		return d.decodeQuotedString()
	}
	return d.decodeUnquotedString()
}

func (d *decoder) decodeQuotedString() (string, error) {
	quote := d.input[d.pos]
	d.pos++
	var sb strings.Builder
	for !d.end() {
		ch := d.input[d.pos]
		if ch == quote {
			d.pos++
			return sb.String(), nil
		}
		if ch == '\\' {
			d.pos++
			esc, ok := d.peek()
			if !ok {
				return "", d.fail("Invalid escape")
			}
			r, err := d.decodeEscape(esc)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(ch)
		d.pos++
	}
	return "", d.fail("Unterminated string literal")
}

// decodeEscape consumes the escape designator byte (and, for \u, its four
// hex digits) and returns the decoded character.
func (d *decoder) decodeEscape(esc byte) (rune, error) {
	d.pos++
	switch esc {
	case '"':
		return '"', nil
	case '\'':
		return '\'', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		if d.pos+4 > len(d.input) {
			return 0, d.fail("Invalid unicode escape")
		}
		code, err := strconv.ParseUint(d.input[d.pos:d.pos+4], 16, 16)
		if err != nil {
			return 0, d.fail("Invalid unicode escape")
		}
		d.pos += 4
		r := rune(code)
		if !utf8.ValidRune(r) {
			return 0, d.fail("Invalid unicode scalar value")
		}
		return r, nil
	default:
		return 0, d.fail("Unknown escape sequence")
	}
}

func (d *decoder) decodeUnquotedString() (string, error) {
	start := d.pos
	for !d.end() {
		ch := d.input[d.pos]
		if isDelimiter(ch) || isWhitespace(ch) {
			break
		}
		d.pos++
	}
	trimmed := strings.TrimSpace(d.input[start:d.pos])
	if trimmed == "" {
		return "", d.fail("Empty string value")
	}
	return trimmed, nil
}

func (d *decoder) decodeNumber() (*Value, error) {
	start := d.pos
	for !d.end() {
		ch := d.input[d.pos]
		if ch == '+' || ch == '-' || ch == '.' || ch == 'e' || ch == 'E' || (ch >= '0' && ch <= '9') {
			d.pos++
			continue
		}
		break
	}
	if !d.end() {
		next := d.input[d.pos]
		if !isDelimiter(next) && !isWhitespace(next) {
			return nil, d.fail("Invalid number boundary")
		}
	}
	text := d.input[start:d.pos]
	num, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, d.fail("Invalid number")
	}
	// Overflow leaves num at ±Inf; report it as non-finite rather than
	// unparsable.
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return nil, d.fail("Non-finite number")
	}
	return Number(num), nil
}

// tryDecodeDate attempts to match the fixed 23-byte timestamp pattern at
// the cursor. A match is only taken when the following byte (if any) is a
// delimiter or whitespace; otherwise the caller falls through to number
// parsing.
func (d *decoder) tryDecodeDate() (*Value, bool) {
	if d.pos+dateLen > len(d.input) {
		return nil, false
	}
	candidate := d.input[d.pos : d.pos+dateLen]
	t, err := time.ParseInLocation(dateLayout, candidate, time.UTC)
	if err != nil {
		return nil, false
	}
	if d.pos+dateLen < len(d.input) {
		next := d.input[d.pos+dateLen]
		if !isDelimiter(next) && !isWhitespace(next) {
			return nil, false
		}
	}
	d.pos += dateLen
	return Date(t), true
}

// matchKeyword consumes keyword if it appears at the cursor followed by a
// delimiter, whitespace, or end of input.
func (d *decoder) matchKeyword(keyword string) bool {
	if !strings.HasPrefix(d.input[d.pos:], keyword) {
		return false
	}
	end := d.pos + len(keyword)
	if end < len(d.input) && !isDelimiter(d.input[end]) && !isWhitespace(d.input[end]) {
		return false
	}
	d.pos = end
	return true
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ':', ',', '(', ')', '[', ']', '|':
		return true
	default:
		return false
	}
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

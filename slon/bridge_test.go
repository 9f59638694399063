package slon

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGo_Scalars(t *testing.T) {
	at := time.Date(2024, 3, 1, 18, 22, 10, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected *Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"int", 42, Number(42)},
		{"int64", int64(-7), Number(-7)},
		{"uint8", uint8(255), Number(255)},
		{"uint64", uint64(1 << 40), Number(1 << 40)},
		{"float64", 3.5, Number(3.5)},
		{"float32", float32(0.5), Number(0.5)},
		{"string", "hi", Str("hi")},
		{"time", at, Date(at)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromGo(tt.input)
			require.NoError(t, err)
			assert.True(t, v.Equal(tt.expected), "got %s, want %s", Encode(v), Encode(tt.expected))
		})
	}
}

func TestFromGo_Containers(t *testing.T) {
	v, err := FromGo(map[string]any{
		"name":  "job",
		"count": 3,
		"tags":  []any{"a", "b"},
		"inner": map[string]any{"ok": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "(count: 3, inner: (ok: true), name: 'job', tags: ['a' | 'b'])", Encode(v))
}

func TestFromGo_NamedTypes(t *testing.T) {
	type tags []string
	type meta map[string]int

	v, err := FromGo(tags{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "['x' | 'y']", Encode(v))

	v, err = FromGo(meta{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "(n: 1)", Encode(v))
}

func TestFromGo_ValuePassthrough(t *testing.T) {
	original := Object(Field("a", Number(1)))
	v, err := FromGo(original)
	require.NoError(t, err)
	assert.Same(t, original, v)
}

func TestFromGo_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"float32 infinity", float32(math.Inf(-1))},
		{"NaN inside slice", []any{1.0, math.NaN()}},
		{"non-string map key", map[int]string{1: "x"}},
		{"struct", struct{ A int }{1}},
		{"channel", make(chan int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGo(tt.input)
			require.Error(t, err)
		})
	}
}

func TestInterface_RoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 18, 22, 10, 0, time.UTC)
	native := map[string]any{
		"name":  "job",
		"ok":    true,
		"count": float64(3),
		"when":  at,
		"tags":  []any{"a", "b"},
		"none":  nil,
	}

	v, err := FromGo(native)
	require.NoError(t, err)

	if diff := cmp.Diff(native, v.Interface()); diff != "" {
		t.Errorf("Interface mismatch (-want +got):\n%s", diff)
	}
}

func TestInterface_Scalars(t *testing.T) {
	assert.Nil(t, Null().Interface())
	assert.Equal(t, true, Bool(true).Interface())
	assert.Equal(t, 1.5, Number(1.5).Interface())
	assert.Equal(t, "x", Str("x").Interface())

	var v *Value
	assert.Nil(t, v.Interface())
}

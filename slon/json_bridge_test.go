package slon

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	v, err := FromJSON([]byte(`{"name":"job","count":3,"tags":["a","b"],"ok":true,"none":null}`))
	require.NoError(t, err)
	assert.Equal(t, "(count: 3, name: 'job', none: null, ok: true, tags: ['a' | 'b'])", Encode(v))
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON parse error")
}

func TestToJSON(t *testing.T) {
	at := time.Date(2024, 3, 1, 18, 22, 10, int(time.Millisecond), time.UTC)
	v := Object(
		Field("at", Date(at)),
		Field("n", Number(2.5)),
		Field("xs", Array(Number(1), Null())),
	)

	data, err := ToJSON(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-03-01/18:22:10.001","n":2.5,"xs":[1,null]}`, string(data))
}

func TestToJSON_KeyOrder(t *testing.T) {
	v := Object(
		Field("zulu", Number(1)),
		Field("alpha", Number(2)),
	)

	data, err := ToJSON(v)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"zulu":1}`, string(data))
}

func TestJSON_RoundTrip(t *testing.T) {
	src := []byte(`{"a":[1,2.5,true,null,"x"],"b":{"c":"d"}}`)

	v, err := FromJSON(src)
	require.NoError(t, err)

	back, err := ToJSON(v)
	require.NoError(t, err)

	var want, got any
	require.NoError(t, json.Unmarshal(src, &want))
	require.NoError(t, json.Unmarshal(back, &got))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON round-trip mismatch (-want +got):\n%s", diff)
	}
}

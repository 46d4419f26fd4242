/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge(t *testing.T) {
	assert.Equal(t, NewEdge("alice", "bob"), NewEdge("bob", "alice"))
	assert.Equal(t, Edge{First: "bob", Second: "alice"}, NewEdge("alice", "bob"))
	assert.Equal(t, [2]string{"bob", "alice"}, NewEdge("alice", "bob").Nodes())
	assert.True(t, NewEdge("x", "x").IsSelfLoop())
	assert.False(t, NewEdge("x", "X").IsSelfLoop())
	assert.Equal(t, "bob<->alice", NewEdge("alice", "bob").String())
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	t.Run("valid record", func(t *testing.T) {
		ev, err := n.Normalize([]byte(`{"created_time": "2016-04-07T03:33:19Z", "target": "Jamie-Korn", "actor": "Jordan-Gruber"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(1459999999), ev.Time)
		assert.Equal(t, NewEdge("Jamie-Korn", "Jordan-Gruber"), ev.Edge)
	})

	t.Run("field order does not matter", func(t *testing.T) {
		ev, err := n.Normalize([]byte(`{"actor": "b", "created_time": "1970-01-01T00:01:00Z", "target": "a"}`))
		require.NoError(t, err)
		assert.Equal(t, Event{Time: 60, Edge: Edge{First: "b", Second: "a"}}, ev)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		ev, err := n.Normalize([]byte(`{"created_time": "1970-01-01T00:00:05Z", "target": "a", "actor": "b", "amount": 12.5}`))
		require.NoError(t, err)
		assert.Equal(t, int64(5), ev.Time)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		_, err := n.Normalize([]byte("  {\"created_time\": \"1970-01-01T00:00:05Z\", \"target\": \"a\", \"actor\": \"b\"}\r\n"))
		assert.NoError(t, err)
	})

	t.Run("self loop is not filtered", func(t *testing.T) {
		ev, err := n.Normalize([]byte(`{"created_time": "1970-01-01T00:00:05Z", "target": "a", "actor": "a"}`))
		require.NoError(t, err)
		assert.True(t, ev.Edge.IsSelfLoop())
	})

	t.Run("case is preserved by default", func(t *testing.T) {
		ev, err := n.Normalize([]byte(`{"created_time": "1970-01-01T00:00:05Z", "target": "Alice", "actor": "alice"}`))
		require.NoError(t, err)
		assert.False(t, ev.Edge.IsSelfLoop())
	})
}

func TestNormalize_FoldCase(t *testing.T) {
	n := NewNormalizer(WithFoldCase(true))
	ev, err := n.Normalize([]byte(`{"created_time": "1970-01-01T00:00:05Z", "target": "Alice", "actor": "BOB"}`))
	require.NoError(t, err)
	assert.Equal(t, Edge{First: "bob", Second: "alice"}, ev.Edge)
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason error
		field  string
		kind   string
	}{
		{name: "empty line", line: "", reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "not json", line: "hello", reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "json null", line: "null", reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "json array", line: `["2016-04-07T03:33:19Z", "a", "b"]`, reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "truncated object", line: `{"created_time": "2016-04-07T03:33:19Z", "target": "a"`, reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "trailing data", line: `{"created_time": "2016-04-07T03:33:19Z", "target": "a", "actor": "b"} {"x": 1}`, reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "non string field", line: `{"created_time": "2016-04-07T03:33:19Z", "target": 7, "actor": "b"}`, reason: ErrMalformedRecord, kind: "malformed_record"},
		{name: "missing actor", line: `{"created_time": "2016-04-07T03:33:19Z", "target": "a"}`, reason: ErrMissingField, field: FieldActor, kind: "missing_field"},
		{name: "empty target", line: `{"created_time": "2016-04-07T03:33:19Z", "target": "", "actor": "b"}`, reason: ErrMissingField, field: FieldTarget, kind: "missing_field"},
		{name: "null created_time", line: `{"created_time": null, "target": "a", "actor": "b"}`, reason: ErrMissingField, field: FieldCreatedTime, kind: "missing_field"},
		{name: "fractional seconds", line: `{"created_time": "2016-04-07T03:33:19.5Z", "target": "a", "actor": "b"}`, reason: ErrInvalidTimestamp, field: FieldCreatedTime, kind: "invalid_timestamp"},
		{name: "offset instead of Z", line: `{"created_time": "2016-04-07T03:33:19+00:00", "target": "a", "actor": "b"}`, reason: ErrInvalidTimestamp, field: FieldCreatedTime, kind: "invalid_timestamp"},
		{name: "date only", line: `{"created_time": "2016-04-07", "target": "a", "actor": "b"}`, reason: ErrInvalidTimestamp, field: FieldCreatedTime, kind: "invalid_timestamp"},
		{name: "out of range month", line: `{"created_time": "2016-13-07T03:33:19Z", "target": "a", "actor": "b"}`, reason: ErrInvalidTimestamp, field: FieldCreatedTime, kind: "invalid_timestamp"},
	}
	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalize([]byte(tt.line))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
			assert.Equal(t, tt.kind, pe.Kind())
		})
	}
}

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("1970-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	ts, err = ParseTime("2016-04-07T03:33:19Z")
	require.NoError(t, err)
	assert.Equal(t, int64(1459999999), ts)

	_, err = ParseTime("2016-04-07T3:33:19Z")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestParseError_Error(t *testing.T) {
	assert.Equal(t, `missing field "actor"`, (&ParseError{Field: FieldActor, Reason: ErrMissingField}).Error())
	err := &ParseError{Reason: ErrMalformedRecord, Err: errors.New("boom")}
	assert.Equal(t, "malformed record: boom", err.Error())
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

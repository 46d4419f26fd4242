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
	"bytes"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// TimeLayout is the only accepted format of created_time.
const TimeLayout = "2006-01-02T15:04:05Z"

const (
	FieldCreatedTime = "created_time"
	FieldTarget      = "target"
	FieldActor       = "actor"
)

// Record is the wire schema of one input line. Fields are pointers so that an absent
// field and an explicit null can both be told apart from a decoded value.
type Record struct {
	CreatedTime *string `json:"created_time"`
	Target      *string `json:"target"`
	Actor       *string `json:"actor"`
}

// Normalizer validates records and converts them into Events.
type Normalizer struct {
	opts options
}

// NewNormalizer returns a Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Normalizer{opts: *o}
}

// Normalize parses one line. Every rejected line yields a *ParseError.
func (n *Normalizer) Normalize(line []byte) (Event, error) {
	line = bytes.TrimSpace(line)
	// a JSON null decodes into a zero Record without error, reject it up front.
	if len(line) == 0 || line[0] != '{' {
		return Event{}, &ParseError{Reason: ErrMalformedRecord}
	}

	var rec Record
	// Unmarshal rejects trailing data after the top-level object.
	if err := json.Unmarshal(line, &rec); err != nil {
		return Event{}, &ParseError{Reason: ErrMalformedRecord, Err: err}
	}
	return n.FromRecord(rec)
}

// FromRecord validates an already decoded Record.
func (n *Normalizer) FromRecord(rec Record) (Event, error) {
	created, err := required(FieldCreatedTime, rec.CreatedTime)
	if err != nil {
		return Event{}, err
	}
	target, err := required(FieldTarget, rec.Target)
	if err != nil {
		return Event{}, err
	}
	actor, err := required(FieldActor, rec.Actor)
	if err != nil {
		return Event{}, err
	}

	ts, err := ParseTime(created)
	if err != nil {
		return Event{}, err
	}

	if n.opts.foldCase {
		target = strings.ToLower(target)
		actor = strings.ToLower(actor)
	}
	return Event{Time: ts, Edge: NewEdge(actor, target)}, nil
}

// ParseTime converts a created_time value to seconds since the Unix epoch.
func ParseTime(value string) (int64, error) {
	// time.Parse silently accepts fractional seconds and single digit hours, the length
	// check rules both out.
	if len(value) != len(TimeLayout) {
		return 0, &ParseError{Field: FieldCreatedTime, Reason: ErrInvalidTimestamp}
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return 0, &ParseError{Field: FieldCreatedTime, Reason: ErrInvalidTimestamp, Err: err}
	}
	return t.Unix(), nil
}

func required(field string, value *string) (string, error) {
	if value == nil || *value == "" {
		return "", &ParseError{Field: field, Reason: ErrMissingField}
	}
	return *value, nil
}

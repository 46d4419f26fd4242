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
	"fmt"
)

var (
	// ErrMalformedRecord is returned when a line is not exactly one JSON object.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMissingField is returned when a required field is absent, null or empty.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidTimestamp is returned when created_time is not in the YYYY-MM-DDTHH:MM:SSZ format.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// ParseError is returned by the Normalizer for every record it rejects.
type ParseError struct {
	// Field is the offending field, empty when the record as a whole could not be decoded.
	Field string
	// Reason is one of ErrMalformedRecord, ErrMissingField or ErrInvalidTimestamp.
	Reason error
	// Err is the underlying decoder or time parsing error if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Reason.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the reason and the underlying error to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// Kind returns a short label for the rejection reason, suitable for metrics.
func (e *ParseError) Kind() string {
	switch {
	case errors.Is(e.Reason, ErrMissingField):
		return "missing_field"
	case errors.Is(e.Reason, ErrInvalidTimestamp):
		return "invalid_timestamp"
	default:
		return "malformed_record"
	}
}

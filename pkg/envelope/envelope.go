// Package envelope decodes the remote API's response bodies into typed records.
//
// The API is inconsistent about shapes: some endpoints answer
// {"success":true,"data":[...]}, some {"data":{...}}, some a bare array and
// paginated endpoints nest a Laravel paginator under data. Decode accepts all
// of them and reports anything else as Malformed instead of pretending the
// collection is empty.
package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when a body matches none of the known shapes.
	ErrMalformed = errors.New("malformed response body")
	// ErrRejected is returned for {"success":false} envelopes.
	ErrRejected = errors.New("request rejected by server")
)

// RejectedError carries the server message of a {"success":false} envelope.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return ErrRejected.Error() + ": " + messageOr(e.Message, "unknown error")
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// Shape tells which branch of the decoder produced the records.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeEnvelope
	ShapePaginated
	ShapeSingleton
	ShapeArray
)

func (s Shape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapePaginated:
		return "paginated"
	case ShapeSingleton:
		return "singleton"
	case ShapeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of Decode. Records is never nil.
type Result[T any] struct {
	Records []T
	Shape   Shape
	Message string
	Err     error
}

// Malformed reports whether the body could not be read as a collection.
func (r Result[T]) Malformed() bool {
	return r.Err != nil
}

type envelopeBody struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type paginator struct {
	Data        json.RawMessage `json:"data"`
	CurrentPage *int            `json:"current_page"`
	LastPage    *int            `json:"last_page"`
}

// Decode turns a response body into a slice of records.
//
// Rules, in order: an object with a data member yields that member (an array
// as is, a lone object wrapped in a singleton, a paginator's inner array);
// a bare array yields itself; anything else is malformed.
func Decode[T any](body []byte) Result[T] {
	res := Result[T]{Records: []T{}}
	trimmed := bytes.TrimSpace(body)

	switch firstByte(trimmed) {
	case '{':
		var env envelopeBody
		if err := json.Unmarshal(trimmed, &env); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrMalformed, err)
			return res
		}
		res.Message = env.Message
		if env.Success != nil && !*env.Success {
			res.Err = &RejectedError{Message: env.Message}
			return res
		}
		if env.Data == nil {
			res.Err = fmt.Errorf("%w: object without data member", ErrMalformed)
			return res
		}
		return decodeData(env.Data, res)
	case '[':
		if err := json.Unmarshal(trimmed, &res.Records); err != nil {
			res.Records = []T{}
			res.Err = fmt.Errorf("%w: %v", ErrMalformed, err)
			return res
		}
		res.Shape = ShapeArray
		return res
	default:
		res.Err = fmt.Errorf("%w: unexpected body", ErrMalformed)
		return res
	}
}

func decodeData[T any](data json.RawMessage, res Result[T]) Result[T] {
	data = bytes.TrimSpace(data)
	switch firstByte(data) {
	case '[':
		if err := json.Unmarshal(data, &res.Records); err != nil {
			res.Records = []T{}
			res.Err = fmt.Errorf("%w: %v", ErrMalformed, err)
			return res
		}
		res.Shape = ShapeEnvelope
		return res
	case '{':
		var page paginator
		if err := json.Unmarshal(data, &page); err == nil && page.CurrentPage != nil && firstByte(bytes.TrimSpace(page.Data)) == '[' {
			if err := json.Unmarshal(page.Data, &res.Records); err != nil {
				res.Records = []T{}
				res.Err = fmt.Errorf("%w: %v", ErrMalformed, err)
				return res
			}
			res.Shape = ShapePaginated
			return res
		}
		var record T
		if err := json.Unmarshal(data, &record); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrMalformed, err)
			return res
		}
		res.Records = []T{record}
		res.Shape = ShapeSingleton
		return res
	case 'n':
		res.Shape = ShapeEnvelope
		return res
	default:
		res.Err = fmt.Errorf("%w: data member is not a collection", ErrMalformed)
		return res
	}
}

// Records is the lenient form of Decode: malformed bodies yield an empty slice.
func Records[T any](body []byte) []T {
	return Decode[T](body).Records
}

// DecodeOne reads a single record from {"data":{...}} or a bare object.
func DecodeOne[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if firstByte(trimmed) != '{' {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformed)
	}

	var env envelopeBody
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Success != nil && !*env.Success {
		return nil, &RejectedError{Message: env.Message}
	}

	payload := trimmed
	if env.Data != nil {
		payload = bytes.TrimSpace(env.Data)
		if firstByte(payload) == '[' {
			var list []T
			if err := json.Unmarshal(payload, &list); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			if len(list) == 0 {
				return nil, fmt.Errorf("%w: empty data", ErrMalformed)
			}
			return &list[0], nil
		}
		if firstByte(payload) != '{' {
			return nil, fmt.Errorf("%w: data member is not an object", ErrMalformed)
		}
	}

	var record T
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &record, nil
}

// Message extracts a human readable message from an error body, if any.
func Message(body []byte) string {
	var env envelopeBody
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	var text string
	if err := json.Unmarshal(env.Error, &text); err == nil {
		return text
	}
	return ""
}

// FieldErrors extracts Laravel style {"errors":{"field":["msg"]}} bodies.
func FieldErrors(body []byte) map[string]string {
	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err != nil || len(payload.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(payload.Errors))
	for field, msgs := range payload.Errors {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

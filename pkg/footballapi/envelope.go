package footballapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errNotObject     = errors.New("response body is not a JSON object")
	errStatusMissing = errors.New("response has no ERROR field")
	errStatusType    = errors.New("ERROR field is not a string")
)

// Envelope is the top-level object of every Football-API response, keyed by field name.
type Envelope map[string]json.RawMessage

// Status returns the ERROR field when it is present and a JSON string.
func (e Envelope) Status() (string, bool) {
	raw, ok := e[FieldError]
	if !ok {
		return "", false
	}
	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", false
	}
	return status, true
}

// Field returns the raw value stored under name.
func (e Envelope) Field(name string) (json.RawMessage, bool) {
	raw, ok := e[name]
	return raw, ok
}

// Decode unmarshals the field stored under name into dst.
func (e Envelope) Decode(name string, dst any) error {
	raw, ok := e[name]
	if !ok {
		return fmt.Errorf("field %q not present", name)
	}
	return json.Unmarshal(raw, dst)
}

func decodeEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, errNotObject
	}
	return env, nil
}

// validate checks the ERROR field and returns nil only for "OK".
func validate(action string, env Envelope) error {
	raw, present := env[FieldError]
	if !present {
		return &Error{Kind: KindUnknownServer, Action: action, Err: errStatusMissing}
	}
	status, ok := env.Status()
	if !ok {
		return &Error{Kind: KindUnknownServer, Action: action, ServerMessage: string(raw), Err: errStatusType}
	}
	if status == statusOK {
		return nil
	}
	return &Error{Kind: classifyStatus(status), Action: action, ServerMessage: status}
}

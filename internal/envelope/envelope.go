// Package envelope defines the uniform result contract returned by every
// workbench tool: a success flag, a human-readable message, and any
// operation-specific fields flattened into the same JSON object.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is one tool outcome. Extra fields keep insertion order when
// marshalled so responses stay stable across identical calls.
type Result struct {
	// Success reports whether the operation completed.
	Success bool
	// Message is the human-readable outcome summary.
	Message string

	extra []field
}

type field struct {
	key   string
	value any
}

// Ok returns a success result with the given message.
func Ok(message string) Result {
	return Result{Success: true, Message: message}
}

// Okf returns a success result with a formatted message.
func Okf(format string, args ...any) Result {
	return Ok(fmt.Sprintf(format, args...))
}

// Fail returns a failure result with the given message.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

// Failf returns a failure result with a formatted message.
func Failf(format string, args ...any) Result {
	return Fail(fmt.Sprintf(format, args...))
}

// With returns a copy of the result with an extra field appended. Setting
// an existing key replaces its value in place.
func (r Result) With(key string, value any) Result {
	extra := make([]field, len(r.extra), len(r.extra)+1)
	copy(extra, r.extra)
	for i := range extra {
		if extra[i].key == key {
			extra[i].value = value
			r.extra = extra
			return r
		}
	}
	r.extra = append(extra, field{key: key, value: value})
	return r
}

// Field returns an extra field by key.
func (r Result) Field(key string) (any, bool) {
	for _, f := range r.extra {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// Fields returns the whole result as a plain map, success and message
// included. Used for MCP structured content.
func (r Result) Fields() map[string]any {
	out := make(map[string]any, len(r.extra)+2)
	out["success"] = r.Success
	out["message"] = r.Message
	for _, f := range r.extra {
		out[f.key] = f.value
	}
	return out
}

// MarshalJSON renders success and message first, then extra fields in
// insertion order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"success":`)
	if r.Success {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
	buf.WriteString(`,"message":`)
	msg, err := json.Marshal(r.Message)
	if err != nil {
		return nil, err
	}
	buf.Write(msg)
	for _, f := range r.extra {
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", f.key, err)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSON renders the result as indented JSON text for MCP clients.
func (r Result) JSON() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"message":"failed to encode result: %s"}`, err)
	}
	return string(data)
}

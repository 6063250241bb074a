package estatekit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResponseShape tags whether a payload arrived flat or double-wrapped in a
// {"data": ...} carrier. Normalization happens exactly once, in [Client.Do].
type ResponseShape uint8

const (
	// ShapeFlat is an exported constant or variable used by the session core.
	ShapeFlat ResponseShape = iota
	// ShapeWrapped is an exported constant or variable used by the session core.
	ShapeWrapped
)

// String describes the string operation and its observable behavior.
func (s ResponseShape) String() string {
	if s == ShapeWrapped {
		return "wrapped"
	}
	return "flat"
}

// Result is the uniform envelope every request returns. Exactly one of Data
// and Err is meaningful: Data when Success is true, Err otherwise. Callers
// must branch on Success, never on payload truthiness — a valid payload may
// be 0, "" or [].
type Result struct {
	Success bool
	Data    json.RawMessage
	Err     string
	// Status is the HTTP status code when the round-trip completed; zero on
	// transport failure.
	Status int
	Shape  ResponseShape
}

// Decode unmarshals the normalized payload into v. Decoding a failed result
// returns [ErrRequestFailed] wrapped with the envelope message.
func (r Result) Decode(v any) error {
	if !r.Success {
		return fmt.Errorf("%w: %s", ErrRequestFailed, r.Err)
	}
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// normalizeBody unwraps a single level of {"data": ...} carrier. A body is
// treated as wrapped only when it is an object whose sole key is "data" —
// resource payloads that merely contain a data field stay flat.
func normalizeBody(raw []byte) (json.RawMessage, ResponseShape) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), ShapeFlat
	}
	if trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil && len(fields) == 1 {
			if inner, ok := fields["data"]; ok {
				return inner, ShapeWrapped
			}
		}
	}
	out := make(json.RawMessage, len(trimmed))
	copy(out, trimmed)
	return out, ShapeFlat
}

// errorMessage extracts a human-readable message from an error body. The
// backend reports failures in a "detail" field; some legacy routes use
// "message". Undecodable bodies fall back to a generic phrase.
func errorMessage(raw []byte, status int) string {
	var probe struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(raw), &probe); err == nil {
		if len(probe.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(probe.Detail, &detail); err == nil && detail != "" {
				return detail
			}
		}
		if probe.Message != "" {
			return probe.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

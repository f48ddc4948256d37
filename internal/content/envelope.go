package content

import (
	"bytes"

	"github.com/goccy/go-json"
)

// envelope is the {success, data, message} wrapper most endpoints use.
// Some endpoints answer with the raw payload instead.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// unwrap returns the payload of body regardless of which shape the endpoint
// used. ok is false for {success:false}, with the server message.
func unwrap(body []byte) (payload []byte, message string, ok bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, "", true
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Success == nil {
		return trimmed, "", true
	}
	if !*env.Success {
		return nil, env.Message, false
	}
	if len(env.Data) == 0 {
		return []byte("null"), env.Message, true
	}
	return env.Data, env.Message, true
}

// serverMessage digs a message out of an error response body, if any.
func serverMessage(body []byte) string {
	var msg struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	if msg.Message != "" {
		return msg.Message
	}
	return msg.Error
}

func decode[T any](path string, payload []byte) (T, error) {
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, &Error{Path: path, Err: err}
	}
	return out, nil
}
